// Package owned implements the tagged-union owned tree and its parser:
// a self-contained materialization of an NBT document that
// no longer references the source buffer.
package owned

import (
	"github.com/nbtkit/nbtkit/borrow"
	"github.com/nbtkit/nbtkit/cursor"
	"github.com/nbtkit/nbtkit/mutf8"
	"github.com/nbtkit/nbtkit/tape"
)

// Tag is a tagged-union NBT value. Exactly one of the typed fields is
// meaningful, selected by Kind; this mirrors the wire grammar rather
// than using a Go interface per kind, keeping conversion and writing
// table-driven instead of type-switch-driven.
type Tag struct {
	Kind tape.Kind

	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	Str       string
	List      []Tag
	ListKind  tape.Kind // element kind of List, meaningful even when List is empty
	Compound  []NamedTag
	IntArray  []int32
	LongArray []int64
}

// NamedTag is one (name, value) pair inside a compound. Compounds are
// stored as an insertion-ordered slice rather than a map so duplicate
// names are preserved and lookup order matches the wire form.
type NamedTag struct {
	Name string
	Tag  Tag
}

// Nbt is a complete owned document: the root compound's own name plus its
// tag value.
type Nbt struct {
	Name string
	Root Tag
}

// Get returns the first direct child of a Compound tag named name, in
// insertion order. It reports ok=false if root is not a Compound or no
// child has that name.
func (t Tag) Get(name string) (Tag, bool) {
	if t.Kind != tape.KindCompound {
		return Tag{}, false
	}
	for _, child := range t.Compound {
		if child.Name == name {
			return child.Tag, true
		}
	}

	return Tag{}, false
}

// Read parses a named root document into an owned tree. It runs the
// borrow parser and converts the result — this avoids duplicating the iterative depth-bounded walk
// in two places while still producing a tree fully detached from the
// source buffer.
func Read(c *cursor.Cursor, opts borrow.Options) (*Nbt, error) {
	b, err := borrow.Read(c, opts)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	root, _ := b.Root()
	name, err := mutf8.Decode(b.NameBytes(b.Name))
	if err != nil {
		name = string(b.NameBytes(b.Name))
	}
	tag := convertCompound(root)
	b.Release()

	return &Nbt{Name: name, Root: tag}, nil
}

// ReadUnnamed parses a root document lacking the name field.
func ReadUnnamed(c *cursor.Cursor, opts borrow.Options) (*Nbt, error) {
	b, err := borrow.ReadUnnamed(c, opts)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	root, _ := b.Root()
	tag := convertCompound(root)
	b.Release()

	return &Nbt{Root: tag}, nil
}

func convertCompound(c borrow.Compound) Tag {
	names := c.Names()
	children := make([]NamedTag, 0, len(names))
	for i, ref := range names {
		nameStr, err := mutf8.Decode(c.NameRefBytes(ref))
		if err != nil {
			nameStr = string(c.NameRefBytes(ref))
		}
		children = append(children, NamedTag{Name: nameStr, Tag: convertView(c.ChildAt(i))})
	}

	return Tag{Kind: tape.KindCompound, Compound: children}
}

func convertView(v borrow.TagView) Tag {
	switch v.Kind() {
	case tape.KindByte:
		x, _ := v.Byte()

		return Tag{Kind: tape.KindByte, Byte: x}
	case tape.KindShort:
		x, _ := v.Short()

		return Tag{Kind: tape.KindShort, Short: x}
	case tape.KindInt:
		x, _ := v.Int()

		return Tag{Kind: tape.KindInt, Int: x}
	case tape.KindLong:
		x, _ := v.Long()

		return Tag{Kind: tape.KindLong, Long: x}
	case tape.KindFloat:
		x, _ := v.Float()

		return Tag{Kind: tape.KindFloat, Float: x}
	case tape.KindDouble:
		x, _ := v.Double()

		return Tag{Kind: tape.KindDouble, Double: x}
	case tape.KindByteArray:
		raw, _ := v.ByteArray()
		out := make([]byte, len(raw))
		copy(out, raw)

		return Tag{Kind: tape.KindByteArray, ByteArray: out}
	case tape.KindString:
		raw, _ := v.RawString()
		s, err := mutf8.Decode(raw)
		if err != nil {
			s = string(raw)
		}

		return Tag{Kind: tape.KindString, Str: s}
	case tape.KindIntArray:
		x, _ := v.IntArray()

		return Tag{Kind: tape.KindIntArray, IntArray: x}
	case tape.KindLongArray:
		x, _ := v.LongArray()

		return Tag{Kind: tape.KindLongArray, LongArray: x}
	case tape.KindList:
		l, _ := v.List()
		elems := make([]Tag, l.Len())
		for i := range elems {
			ev, _ := l.Index(i)
			elems[i] = convertView(ev)
		}

		return Tag{Kind: tape.KindList, List: elems, ListKind: l.ElementKind()}
	case tape.KindCompound:
		c, _ := v.Compound()

		return convertCompound(c)
	default:
		return Tag{Kind: v.Kind()}
	}
}
