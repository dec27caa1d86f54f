// Package cursor implements a bounded, zero-copy sequential reader over a
// byte slice. It tracks position, rejects reads that would run off the
// end of the buffer with errs.ErrUnexpectedEof,
// and hands out borrowed subslices instead of copying for variable-length
// payloads (strings, byte/int/long arrays).
package cursor

import (
	"math"

	"github.com/nbtkit/nbtkit/endian"
	"github.com/nbtkit/nbtkit/errs"
)

// Cursor is a bounded reader over an immutable byte slice. It never
// allocates and never mutates the underlying slice.
type Cursor struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
}

// New creates a Cursor over buf using the given byte-order engine. Standard
// Java Edition NBT requires endian.GetBigEndianEngine(); a bedrock/little-
// endian variant would pass endian.GetLittleEndianEngine() instead — the
// parser itself never hardcodes byte order.
func New(buf []byte, engine endian.EndianEngine) *Cursor {
	return &Cursor{buf: buf, engine: engine}
}

// NewBigEndian is a convenience constructor for standard Java Edition NBT.
func NewBigEndian(buf []byte) *Cursor {
	return New(buf, endian.GetBigEndianEngine())
}

// Pos returns the current read offset into the source buffer.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the source buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Buf returns the full source buffer backing this cursor, for callers
// (like the borrow parser) that need to record byte offsets directly.
func (c *Cursor) Buf() []byte { return c.buf }

func (c *Cursor) require(n int) error {
	if c.Remaining() < n {
		return errs.ErrUnexpectedEof
	}

	return nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// Bytes returns a zero-copy view of the next n bytes and advances the cursor.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// U8 reads one unsigned byte.
func (c *Cursor) U8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++

	return v, nil
}

// I8 reads one signed byte.
func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()

	return int8(v), err
}

// U16 reads a 2-byte unsigned integer in the cursor's byte order.
func (c *Cursor) U16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := c.engine.Uint16(c.buf[c.pos : c.pos+2])
	c.pos += 2

	return v, nil
}

// I16 reads a 2-byte signed integer.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()

	return int16(v), err
}

// U32 reads a 4-byte unsigned integer.
func (c *Cursor) U32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := c.engine.Uint32(c.buf[c.pos : c.pos+4])
	c.pos += 4

	return v, nil
}

// I32 reads a 4-byte signed integer.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()

	return int32(v), err
}

// U64 reads an 8-byte unsigned integer.
func (c *Cursor) U64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := c.engine.Uint64(c.buf[c.pos : c.pos+8])
	c.pos += 8

	return v, nil
}

// I64 reads an 8-byte signed integer.
func (c *Cursor) I64() (int64, error) {
	v, err := c.U64()

	return int64(v), err
}

// F32 reads a 4-byte IEEE-754 float.
func (c *Cursor) F32() (float32, error) {
	v, err := c.U32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// F64 reads an 8-byte IEEE-754 double.
func (c *Cursor) F64() (float64, error) {
	v, err := c.U64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}
