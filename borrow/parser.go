// Package borrow implements the zero-copy tape parser and its typed
// navigator: a single pass over a source buffer that
// records offsets instead of copying payload bytes, and a set of views over
// the resulting tape for typed lookup.
package borrow

import (
	"github.com/nbtkit/nbtkit/cursor"
	"github.com/nbtkit/nbtkit/errs"
	"github.com/nbtkit/nbtkit/tape"
)

// Nbt is a parsed document: a tape indexing into the source buffer it
// borrows. Its lifetime is bounded by that buffer.
type Nbt struct {
	buf      []byte
	tape     *tape.Tape
	Name     NameRef
	rootKind tape.Kind
}

// NameRef locates a raw, undecoded name inside the source buffer. Decode it
// with mutf8.Decode(nbt.NameBytes(ref)) only when the caller actually wants
// the string.
type NameRef struct {
	Offset uint32
	Len    uint16
}

// NameBytes returns the raw MUTF-8 bytes a NameRef points to.
func (n *Nbt) NameBytes(ref NameRef) []byte {
	return n.buf[ref.Offset : ref.Offset+uint32(ref.Len)]
}

// Release returns the document's tape storage to an internal pool for
// reuse by a future parse. Call it only once nothing obtained from this
// Nbt (Compound, TagView, List, NameRef bytes) is still in use — every
// such handle becomes invalid the instant Release runs. Most callers that
// convert straight to an owned tree and discard the Nbt should call this;
// callers keeping the Nbt around for zero-copy access should not.
func (n *Nbt) Release() {
	if n == nil || n.tape == nil {
		return
	}
	n.tape.Release()
}

// Root returns a Compound view over the document's outermost compound, or
// the zero value with ok=false if the document was Absent (empty root).
func (n *Nbt) Root() (Compound, bool) {
	if n == nil || n.rootKind != tape.KindCompound {
		return Compound{}, false
	}

	return Compound{doc: n, headerIdx: 0}, true
}

// Options configures a parse.
type Options struct {
	// MaxDepth bounds composite nesting. Zero means tape.DefaultMaxDepth.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return tape.DefaultMaxDepth
	}

	return o.MaxDepth
}

// frame is one level of the explicit stack the parser uses in place of
// recursion, so a maliciously deep input cannot exhaust the call stack.
type frame struct {
	kind      tape.Kind // KindCompound or KindList
	headerIdx uint32
	names     []tape.NameEntry // accumulated for a compound frame
	elemKind  tape.Kind        // valid for a list frame
	remaining int              // valid for a list frame
}

// Read parses a named root document: kind byte, u16-length-prefixed name,
// then the root compound body. A root kind of 0 yields (nil, nil) — an absent document. Any other root kind is ErrUnknownTag.
func Read(c *cursor.Cursor, opts Options) (*Nbt, error) {
	kind, err := c.U8()
	if err != nil {
		return nil, err
	}

	if kind == byte(tape.KindEnd) {
		return nil, nil
	}
	if kind != byte(tape.KindCompound) {
		return nil, &errs.UnknownTagError{Kind: kind}
	}

	nameRef, err := readNameRef(c)
	if err != nil {
		return nil, err
	}

	t, err := parseRootCompound(c, opts)
	if err != nil {
		return nil, err
	}

	return &Nbt{buf: c.Buf(), tape: t, Name: nameRef, rootKind: tape.KindCompound}, nil
}

// ReadUnnamed parses a root document lacking the name field, as used by
// newer network protocols that already know the root is unnamed. The
// kind byte is still present; only the name is skipped.
func ReadUnnamed(c *cursor.Cursor, opts Options) (*Nbt, error) {
	kind, err := c.U8()
	if err != nil {
		return nil, err
	}

	if kind == byte(tape.KindEnd) {
		return nil, nil
	}
	if kind != byte(tape.KindCompound) {
		return nil, &errs.UnknownTagError{Kind: kind}
	}

	t, err := parseRootCompound(c, opts)
	if err != nil {
		return nil, err
	}

	return &Nbt{buf: c.Buf(), tape: t, rootKind: tape.KindCompound}, nil
}

func readNameRef(c *cursor.Cursor) (NameRef, error) {
	n, err := c.U16()
	if err != nil {
		return NameRef{}, err
	}
	off := uint32(c.Pos())
	if _, err := c.Bytes(int(n)); err != nil {
		return NameRef{}, err
	}

	return NameRef{Offset: off, Len: n}, nil
}

// parseRootCompound drives the iterative main loop after
// the root kind byte and name have already been consumed.
func parseRootCompound(c *cursor.Cursor, opts Options) (*tape.Tape, error) {
	maxDepth := opts.maxDepth()
	t := tape.New(c.Remaining() / 2)

	rootIdx := t.Push(tape.Entry{Kind: tape.KindCompound})
	stack := []frame{{kind: tape.KindCompound, headerIdx: rootIdx}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		switch top.kind {
		case tape.KindCompound:
			done, err := stepCompound(c, t, &stack, top, maxDepth)
			if err != nil {
				return nil, err
			}
			if done {
				stack = stack[:len(stack)-1]
			}

		case tape.KindList:
			done, err := stepList(c, t, &stack, top, maxDepth)
			if err != nil {
				return nil, err
			}
			if done {
				stack = stack[:len(stack)-1]
			}
		}
	}

	return t, nil
}

// stepCompound processes one child of the compound frame at the top of the
// stack, or closes the compound if it sees the End tag. It returns
// done=true when the caller should pop this frame.
func stepCompound(c *cursor.Cursor, t *tape.Tape, stack *[]frame, top *frame, maxDepth int) (bool, error) {
	kindByte, err := c.U8()
	if err != nil {
		return false, err
	}

	if kindByte == byte(tape.KindEnd) {
		endIdx := t.Push(tape.Entry{Kind: tape.KindEnd})
		t.PatchEnd(top.headerIdx, endIdx)
		start, count := t.PushNames(top.names)
		t.Entries[top.headerIdx].Offset = start
		t.Entries[top.headerIdx].Length = count

		return true, nil
	}

	kind := tape.Kind(kindByte)
	if kind > tape.KindLongArray {
		return false, &errs.UnknownTagError{Kind: kindByte}
	}

	nameRef, err := readNameRef(c)
	if err != nil {
		return false, err
	}

	topPos := len(*stack) - 1
	childIdx, err := parseValue(c, t, stack, kind, maxDepth)
	if err != nil {
		return false, err
	}
	// parseValue may have grown the stack, moving its backing array; top
	// would then point at a stale copy of this frame.
	top = &(*stack)[topPos]

	top.names = append(top.names, tape.NameEntry{
		NameOffset: nameRef.Offset,
		NameLen:    nameRef.Len,
		ChildIndex: childIdx,
	})

	return false, nil
}

// stepList processes one element of the list frame at the top of the
// stack, or closes the list once its declared count is exhausted.
func stepList(c *cursor.Cursor, t *tape.Tape, stack *[]frame, top *frame, maxDepth int) (bool, error) {
	if top.remaining == 0 {
		endIdx := t.Push(tape.Entry{Kind: tape.KindEnd})
		t.PatchEnd(top.headerIdx, endIdx)

		return true, nil
	}

	top.remaining--
	if _, err := parseValue(c, t, stack, top.elemKind, maxDepth); err != nil {
		return false, err
	}

	return false, nil
}

// parseValue emits the tape entry for one payload of the given kind. For
// scalar and fixed/variable-length leaf kinds it pushes a complete entry
// and returns. For List and Compound it pushes a header entry, then pushes
// a new frame onto stack so the main loop continues into the nested
// structure instead of recursing.
func parseValue(c *cursor.Cursor, t *tape.Tape, stack *[]frame, kind tape.Kind, maxDepth int) (uint32, error) {
	switch kind {
	case tape.KindByte:
		v, err := c.I8()
		if err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Scalar: uint64(uint8(v))}), nil

	case tape.KindShort:
		v, err := c.I16()
		if err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Scalar: uint64(uint16(v))}), nil

	case tape.KindInt:
		v, err := c.I32()
		if err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Scalar: uint64(uint32(v))}), nil

	case tape.KindLong:
		v, err := c.I64()
		if err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Scalar: uint64(v)}), nil

	case tape.KindFloat:
		v, err := c.U32()
		if err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Scalar: uint64(v)}), nil

	case tape.KindDouble:
		v, err := c.U64()
		if err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Scalar: v}), nil

	case tape.KindString:
		n, err := c.U16()
		if err != nil {
			return 0, err
		}
		off := uint32(c.Pos())
		if _, err := c.Bytes(int(n)); err != nil {
			return 0, err
		}

		return t.Push(tape.Entry{Kind: kind, Offset: off, Length: uint32(n)}), nil

	case tape.KindByteArray:
		return parseArray(c, t, kind, 1)

	case tape.KindIntArray:
		return parseArray(c, t, kind, 4)

	case tape.KindLongArray:
		return parseArray(c, t, kind, 8)

	case tape.KindList:
		return parseListHeader(c, t, stack, maxDepth)

	case tape.KindCompound:
		if len(*stack)+1 > maxDepth {
			return 0, &errs.DepthError{Limit: maxDepth}
		}
		headerIdx := t.Push(tape.Entry{Kind: tape.KindCompound})
		*stack = append(*stack, frame{kind: tape.KindCompound, headerIdx: headerIdx})

		return headerIdx, nil

	default:
		return 0, &errs.UnknownTagError{Kind: byte(kind)}
	}
}

// parseArray reads an i32 length prefix followed by n elements of elemSize
// bytes each, validating the length with a 64-bit multiply so an
// adversarial n cannot overflow the bounds check.
func parseArray(c *cursor.Cursor, t *tape.Tape, kind tape.Kind, elemSize int64) (uint32, error) {
	n, err := c.I32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &errs.NegativeLengthError{Length: int64(n)}
	}

	byteLen := int64(n) * elemSize
	if byteLen > int64(c.Remaining()) {
		return 0, errs.ErrUnexpectedEof
	}

	off := uint32(c.Pos())
	if _, err := c.Bytes(int(byteLen)); err != nil {
		return 0, err
	}

	return t.Push(tape.Entry{Kind: kind, Offset: off, Length: uint32(n)}), nil
}

// parseListHeader reads the element kind and i32 length, then either
// closes an empty list immediately or pushes a list frame for the main
// loop to keep draining. A declared element kind of End with a positive
// length is treated as an empty list per the open question in the design
// notes: length is ignored and no elements are read.
func parseListHeader(c *cursor.Cursor, t *tape.Tape, stack *[]frame, maxDepth int) (uint32, error) {
	elemKindByte, err := c.U8()
	if err != nil {
		return 0, err
	}
	elemKind := tape.Kind(elemKindByte)
	if elemKind > tape.KindLongArray {
		return 0, &errs.UnknownTagError{Kind: elemKindByte}
	}

	n, err := c.I32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &errs.NegativeLengthError{Length: int64(n)}
	}

	if elemKind == tape.KindEnd {
		n = 0
	}

	headerIdx := t.Push(tape.Entry{Kind: tape.KindList, ElemKind: elemKind, Length: uint32(n)})

	if n == 0 {
		endIdx := t.Push(tape.Entry{Kind: tape.KindEnd})
		t.PatchEnd(headerIdx, endIdx)

		return headerIdx, nil
	}

	if len(*stack)+1 > maxDepth {
		return 0, &errs.DepthError{Limit: maxDepth}
	}

	*stack = append(*stack, frame{
		kind:      tape.KindList,
		headerIdx: headerIdx,
		elemKind:  elemKind,
		remaining: int(n),
	})

	return headerIdx, nil
}
