// Package writer serializes an owned tree,
// or a borrow view re-serialized from tape + buffer, back to NBT wire
// bytes, plus optional compression framing on top.
package writer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/nbtkit/nbtkit/borrow"
	"github.com/nbtkit/nbtkit/compress"
	"github.com/nbtkit/nbtkit/endian"
	"github.com/nbtkit/nbtkit/errs"
	"github.com/nbtkit/nbtkit/format"
	"github.com/nbtkit/nbtkit/internal/pool"
	"github.com/nbtkit/nbtkit/mutf8"
	"github.com/nbtkit/nbtkit/owned"
	"github.com/nbtkit/nbtkit/tape"
)

// WriteOwned serializes an owned document to w. Root: kind 10, u16-length-
// prefixed name, compound body . If n is nil,
// a single End byte is written.
func WriteOwned(w io.Writer, n *owned.Nbt) error {
	buf := pool.GetDocBuffer()
	defer pool.PutDocBuffer(buf)

	if n == nil {
		buf.MustWriteByte(0x00)
	} else {
		buf.MustWriteByte(byte(tape.KindCompound))
		appendName(buf, n.Name)
		appendCompoundBody(buf, n.Root.Compound)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &errs.IoError{Err: err}
	}

	return nil
}

// WriteOwnedUnnamed serializes an owned document without the root name
// field, mirroring ReadUnnamed.
func WriteOwnedUnnamed(w io.Writer, n *owned.Nbt) error {
	buf := pool.GetDocBuffer()
	defer pool.PutDocBuffer(buf)

	if n == nil {
		buf.MustWriteByte(0x00)
	} else {
		buf.MustWriteByte(byte(tape.KindCompound))
		appendCompoundBody(buf, n.Root.Compound)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &errs.IoError{Err: err}
	}

	return nil
}

// WriteCompressed serializes n and frames the result with the given
// compression. format.CompressionNone writes raw bytes.
func WriteCompressed(w io.Writer, n *owned.Nbt, kind format.CompressionType) error {
	buf := pool.GetDocBuffer()
	defer pool.PutDocBuffer(buf)

	if n == nil {
		buf.MustWriteByte(0x00)
	} else {
		buf.MustWriteByte(byte(tape.KindCompound))
		appendName(buf, n.Name)
		appendCompoundBody(buf, n.Root.Compound)
	}

	if kind == format.CompressionNone {
		if _, err := buf.WriteTo(w); err != nil {
			return &errs.IoError{Err: err}
		}

		return nil
	}

	codec, err := compress.CreateCodec(kind, "writer")
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writer: %s compress: %w", kind, err)
	}

	if _, err := w.Write(compressed); err != nil {
		return &errs.IoError{Err: err}
	}

	return nil
}

// WriteBorrow re-serializes a borrow view directly from its tape and
// source buffer, without materializing an owned tree.
func WriteBorrow(w io.Writer, n *borrow.Nbt) error {
	buf := pool.GetDocBuffer()
	defer pool.PutDocBuffer(buf)

	root, ok := n.Root()
	if !ok {
		buf.MustWriteByte(0x00)
	} else {
		buf.MustWriteByte(byte(tape.KindCompound))
		nameBytes := n.NameBytes(n.Name)
		buf.MustWrite(binary.BigEndian.AppendUint16(nil, uint16(len(nameBytes))))
		buf.MustWrite(nameBytes)
		appendBorrowCompoundBody(buf, root)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &errs.IoError{Err: err}
	}

	return nil
}

func appendName(buf *pool.ByteBuffer, name string) {
	encoded := mutf8.AppendMUTF8(nil, name)
	buf.MustWrite(binary.BigEndian.AppendUint16(nil, uint16(len(encoded))))
	buf.MustWrite(encoded)
}

func appendCompoundBody(buf *pool.ByteBuffer, children []owned.NamedTag) {
	for _, child := range children {
		buf.MustWriteByte(byte(child.Tag.Kind))
		appendName(buf, child.Name)
		appendPayload(buf, child.Tag)
	}
	buf.MustWriteByte(byte(tape.KindEnd))
}

func appendPayload(buf *pool.ByteBuffer, t owned.Tag) {
	switch t.Kind {
	case tape.KindByte:
		buf.MustWriteByte(byte(t.Byte))
	case tape.KindShort:
		buf.MustWrite(binary.BigEndian.AppendUint16(nil, uint16(t.Short)))
	case tape.KindInt:
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(t.Int)))
	case tape.KindLong:
		buf.MustWrite(binary.BigEndian.AppendUint64(nil, uint64(t.Long)))
	case tape.KindFloat:
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, math.Float32bits(t.Float)))
	case tape.KindDouble:
		buf.MustWrite(binary.BigEndian.AppendUint64(nil, math.Float64bits(t.Double)))
	case tape.KindByteArray:
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(t.ByteArray))))
		buf.MustWrite(t.ByteArray)
	case tape.KindString:
		appendName(buf, t.Str) // same length-prefix + MUTF-8 encoding as a name
	case tape.KindIntArray:
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(t.IntArray))))
		raw := make([]byte, len(t.IntArray)*4)
		endian.PutInt32sInto(raw, t.IntArray)
		buf.MustWrite(raw)
	case tape.KindLongArray:
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(t.LongArray))))
		raw := make([]byte, len(t.LongArray)*8)
		endian.PutInt64sInto(raw, t.LongArray)
		buf.MustWrite(raw)
	case tape.KindList:
		buf.MustWriteByte(byte(t.ListKind))
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(t.List))))
		for _, elem := range t.List {
			appendPayload(buf, elem)
		}
	case tape.KindCompound:
		appendCompoundBody(buf, t.Compound)
	}
}

// appendBorrowCompoundBody walks a borrow.Compound's children directly,
// re-emitting each name and payload without ever materializing an owned
// tree — re-serialize-from-tape path for borrow views.
func appendBorrowCompoundBody(buf *pool.ByteBuffer, c borrow.Compound) {
	names := c.Names()
	for i, ref := range names {
		v := c.ChildAt(i)
		nameBytes := c.NameRefBytes(ref)
		buf.MustWriteByte(byte(v.Kind()))
		buf.MustWrite(binary.BigEndian.AppendUint16(nil, uint16(len(nameBytes))))
		buf.MustWrite(nameBytes)
		appendBorrowPayload(buf, v)
	}
	buf.MustWriteByte(byte(tape.KindEnd))
}

func appendBorrowPayload(buf *pool.ByteBuffer, v borrow.TagView) {
	switch v.Kind() {
	case tape.KindByte:
		x, _ := v.Byte()
		buf.MustWriteByte(byte(x))
	case tape.KindShort:
		x, _ := v.Short()
		buf.MustWrite(binary.BigEndian.AppendUint16(nil, uint16(x)))
	case tape.KindInt:
		x, _ := v.Int()
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(x)))
	case tape.KindLong:
		x, _ := v.Long()
		buf.MustWrite(binary.BigEndian.AppendUint64(nil, uint64(x)))
	case tape.KindFloat:
		x, _ := v.Float()
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, math.Float32bits(x)))
	case tape.KindDouble:
		x, _ := v.Double()
		buf.MustWrite(binary.BigEndian.AppendUint64(nil, math.Float64bits(x)))
	case tape.KindByteArray:
		x, _ := v.ByteArray()
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(x))))
		buf.MustWrite(x)
	case tape.KindString:
		raw, _ := v.RawString()
		s, err := mutf8.Decode(raw)
		if err != nil {
			buf.MustWrite(binary.BigEndian.AppendUint16(nil, uint16(len(raw))))
			buf.MustWrite(raw)

			return
		}
		appendName(buf, s)
	case tape.KindIntArray:
		x, _ := v.IntArray()
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(x))))
		raw := make([]byte, len(x)*4)
		endian.PutInt32sInto(raw, x)
		buf.MustWrite(raw)
	case tape.KindLongArray:
		x, _ := v.LongArray()
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(len(x))))
		raw := make([]byte, len(x)*8)
		endian.PutInt64sInto(raw, x)
		buf.MustWrite(raw)
	case tape.KindList:
		l, _ := v.List()
		buf.MustWriteByte(byte(l.ElementKind()))
		buf.MustWrite(binary.BigEndian.AppendUint32(nil, uint32(l.Len())))
		for i := 0; i < l.Len(); i++ {
			elem, _ := l.Index(i)
			appendBorrowPayload(buf, elem)
		}
	case tape.KindCompound:
		sub, _ := v.Compound()
		appendBorrowCompoundBody(buf, sub)
	}
}
