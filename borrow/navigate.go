package borrow

import (
	"bytes"
	"math"

	"github.com/nbtkit/nbtkit/endian"
	"github.com/nbtkit/nbtkit/mutf8"
	"github.com/nbtkit/nbtkit/tape"
)

// Compound is a typed view over one compound entry's children.
// Lookup is a linear scan over the compound's name-index range comparing
// raw MUTF-8 bytes; duplicate names return the first match in insertion
// order, matching the parser's insertion-order guarantee.
type Compound struct {
	doc       *Nbt
	headerIdx uint32
}

func (c Compound) header() tape.Entry { return c.doc.tape.Entries[c.headerIdx] }

// Len returns the number of direct children.
func (c Compound) Len() int { return int(c.header().Length) }

// names returns the compound's slice of the tape's name-index side array.
func (c Compound) names() []tape.NameEntry {
	h := c.header()

	return c.doc.tape.Names[h.Offset : h.Offset+h.Length]
}

// Get looks up a direct child by name, returning its TagView and true, or
// the zero TagView and false if no child has that name.
func (c Compound) Get(name string) (TagView, bool) {
	key := mutf8.AppendMUTF8(nil, name)
	for _, row := range c.names() {
		if bytes.Equal(c.doc.NameBytes(NameRef{Offset: row.NameOffset, Len: row.NameLen}), key) {
			return TagView{doc: c.doc, idx: row.ChildIndex}, true
		}
	}

	return TagView{}, false
}

// ChildAt returns the i-th direct child in insertion order, without going
// through a name lookup — used by the writer to re-serialize a compound
// directly from the tape.
func (c Compound) ChildAt(i int) TagView {
	return TagView{doc: c.doc, idx: c.names()[i].ChildIndex}
}

// NameRefBytes returns the raw MUTF-8 bytes a NameRef obtained from this
// compound's Names() points to.
func (c Compound) NameRefBytes(ref NameRef) []byte {
	return c.doc.NameBytes(ref)
}

// Names returns the raw, undecoded names of this compound's direct
// children in insertion order, for callers that want to enumerate rather
// than look up by name.
func (c Compound) Names() []NameRef {
	rows := c.names()
	out := make([]NameRef, len(rows))
	for i, row := range rows {
		out[i] = NameRef{Offset: row.NameOffset, Len: row.NameLen}
	}

	return out
}

// Byte, Short, Int, ... look up name and, if present and kind-matching,
// return the decoded value and true. A missing name or a kind mismatch
// both report false — the navigator never distinguishes the two.
func (c Compound) Byte(name string) (int8, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}

	return v.Byte()
}

func (c Compound) Short(name string) (int16, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}

	return v.Short()
}

func (c Compound) Int(name string) (int32, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}

	return v.Int()
}

func (c Compound) Long(name string) (int64, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}

	return v.Long()
}

func (c Compound) Float(name string) (float32, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}

	return v.Float()
}

func (c Compound) Double(name string) (float64, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}

	return v.Double()
}

func (c Compound) String(name string) (string, bool) {
	v, ok := c.Get(name)
	if !ok {
		return "", false
	}

	return v.String()
}

func (c Compound) ByteArray(name string) ([]byte, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}

	return v.ByteArray()
}

func (c Compound) IntArray(name string) ([]int32, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}

	return v.IntArray()
}

func (c Compound) LongArray(name string) ([]int64, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}

	return v.LongArray()
}

func (c Compound) List(name string) (List, bool) {
	v, ok := c.Get(name)
	if !ok {
		return List{}, false
	}

	return v.List()
}

func (c Compound) Compound(name string) (Compound, bool) {
	v, ok := c.Get(name)
	if !ok {
		return Compound{}, false
	}

	return v.Compound()
}

// TagView is a typed handle to a single tape entry, valid only for the
// lifetime of the Nbt it was obtained from.
type TagView struct {
	doc *Nbt
	idx uint32
}

func (v TagView) entry() tape.Entry { return v.doc.tape.Entries[v.idx] }

// Kind reports the wire kind of this entry.
func (v TagView) Kind() tape.Kind { return v.entry().Kind }

func (v TagView) Byte() (int8, bool) {
	e := v.entry()
	if e.Kind != tape.KindByte {
		return 0, false
	}

	return int8(uint8(e.Scalar)), true
}

func (v TagView) Short() (int16, bool) {
	e := v.entry()
	if e.Kind != tape.KindShort {
		return 0, false
	}

	return int16(uint16(e.Scalar)), true
}

func (v TagView) Int() (int32, bool) {
	e := v.entry()
	if e.Kind != tape.KindInt {
		return 0, false
	}

	return int32(uint32(e.Scalar)), true
}

func (v TagView) Long() (int64, bool) {
	e := v.entry()
	if e.Kind != tape.KindLong {
		return 0, false
	}

	return int64(e.Scalar), true
}

func (v TagView) Float() (float32, bool) {
	e := v.entry()
	if e.Kind != tape.KindFloat {
		return 0, false
	}

	return math.Float32frombits(uint32(e.Scalar)), true
}

func (v TagView) Double() (float64, bool) {
	e := v.entry()
	if e.Kind != tape.KindDouble {
		return 0, false
	}

	return math.Float64frombits(e.Scalar), true
}

// String returns the lazily-decoded UTF-8 value of a String entry. Decoding
// happens here, never during parse.
func (v TagView) String() (string, bool) {
	e := v.entry()
	if e.Kind != tape.KindString {
		return "", false
	}
	raw := v.doc.buf[e.Offset : e.Offset+e.Length]
	s, err := mutf8.Decode(raw)
	if err != nil {
		return "", false
	}

	return s, true
}

// RawString returns the undecoded MUTF-8 bytes of a String entry, for
// callers that want to defer or skip decoding entirely.
func (v TagView) RawString() ([]byte, bool) {
	e := v.entry()
	if e.Kind != tape.KindString {
		return nil, false
	}

	return v.doc.buf[e.Offset : e.Offset+e.Length], true
}

func (v TagView) ByteArray() ([]byte, bool) {
	e := v.entry()
	if e.Kind != tape.KindByteArray {
		return nil, false
	}

	return v.doc.buf[e.Offset : e.Offset+e.Length], true
}

// IntArray materializes a native-endian []int32 from the borrowed
// big-endian bytes. This allocates; the raw bytes stay put until
// this call.
func (v TagView) IntArray() ([]int32, bool) {
	e := v.entry()
	if e.Kind != tape.KindIntArray {
		return nil, false
	}
	raw := v.doc.buf[e.Offset : e.Offset+e.Length*4]

	return endian.SwapInt32s(raw), true
}

// LongArray materializes a native-endian []int64 from the borrowed
// big-endian bytes.
func (v TagView) LongArray() ([]int64, bool) {
	e := v.entry()
	if e.Kind != tape.KindLongArray {
		return nil, false
	}
	raw := v.doc.buf[e.Offset : e.Offset+e.Length*8]

	return endian.SwapInt64s(raw), true
}

func (v TagView) List() (List, bool) {
	e := v.entry()
	if e.Kind != tape.KindList {
		return List{}, false
	}

	return List{doc: v.doc, headerIdx: v.idx}, true
}

func (v TagView) Compound() (Compound, bool) {
	e := v.entry()
	if e.Kind != tape.KindCompound {
		return Compound{}, false
	}

	return Compound{doc: v.doc, headerIdx: v.idx}, true
}

// List is a typed view over a List entry's elements.
type List struct {
	doc       *Nbt
	headerIdx uint32
}

func (l List) header() tape.Entry { return l.doc.tape.Entries[l.headerIdx] }

// Len returns the declared element count.
func (l List) Len() int { return int(l.header().Length) }

// ElementKind returns the kind every element shares.
func (l List) ElementKind() tape.Kind { return l.header().ElemKind }

// Index returns the i-th element. Access is O(1) for lists of fixed-size
// leaf kinds (every scalar, string, and array kind occupies exactly one
// tape entry) and O(n) for lists of List or Compound, whose elements have
// variable tape width and must be walked via each element's end index
// list or compound elements have variable tape width.
func (l List) Index(i int) (TagView, bool) {
	h := l.header()
	if i < 0 || i >= int(h.Length) {
		return TagView{}, false
	}

	if h.ElemKind != tape.KindList && h.ElemKind != tape.KindCompound {
		return TagView{doc: l.doc, idx: l.headerIdx + 1 + uint32(i)}, true
	}

	idx := l.headerIdx + 1
	for j := 0; j < i; j++ {
		idx = l.doc.tape.Entries[idx].EndIndex + 1
	}

	return TagView{doc: l.doc, idx: idx}, true
}

// Compounds returns every element as a Compound, or ok=false if the list's
// element kind is not Compound.
func (l List) Compounds() ([]Compound, bool) {
	if l.ElementKind() != tape.KindCompound {
		return nil, false
	}
	out := make([]Compound, l.Len())
	for i := range out {
		v, _ := l.Index(i)
		out[i], _ = v.Compound()
	}

	return out, true
}

// Strings returns every element's decoded string, or ok=false if the
// list's element kind is not String.
func (l List) Strings() ([]string, bool) {
	if l.ElementKind() != tape.KindString {
		return nil, false
	}
	out := make([]string, l.Len())
	for i := range out {
		v, _ := l.Index(i)
		s, ok := v.String()
		if !ok {
			return nil, false
		}
		out[i] = s
	}

	return out, true
}

// Ints returns every element's int32 value, or ok=false if the list's
// element kind is not Int.
func (l List) Ints() ([]int32, bool) {
	if l.ElementKind() != tape.KindInt {
		return nil, false
	}
	out := make([]int32, l.Len())
	for i := range out {
		v, _ := l.Index(i)
		out[i], _ = v.Int()
	}

	return out, true
}

// Lists returns every element as a List, or ok=false if the list's element
// kind is not List.
func (l List) Lists() ([]List, bool) {
	if l.ElementKind() != tape.KindList {
		return nil, false
	}
	out := make([]List, l.Len())
	for i := range out {
		v, _ := l.Index(i)
		out[i], _ = v.List()
	}

	return out, true
}
