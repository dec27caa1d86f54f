package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbtkit/nbtkit/errs"
)

func TestCursorScalarReads(t *testing.T) {
	data := []byte{
		0x7F,             // I8
		0x01, 0x02,       // U16 = 0x0102
		0x00, 0x00, 0x00, 0x03, // I32 = 3
	}
	c := NewBigEndian(data)

	b, err := c.I8()
	require.NoError(t, err)
	require.Equal(t, int8(0x7F), b)

	u16, err := c.U16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), u16)

	i32, err := c.I32()
	require.NoError(t, err)
	require.Equal(t, int32(3), i32)

	require.Equal(t, 0, c.Remaining())
}

func TestCursorBytesIsZeroCopyView(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	c := NewBigEndian(data)
	view, err := c.Bytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, view)

	// The returned slice must alias the source buffer, not a copy.
	data[0] = 0xFF
	require.Equal(t, byte(0xFF), view[0])
}

func TestCursorUnexpectedEof(t *testing.T) {
	c := NewBigEndian([]byte{0x01})
	_, err := c.U16()
	require.ErrorIs(t, err, errs.ErrUnexpectedEof)
}

func TestCursorSkipAndPos(t *testing.T) {
	c := NewBigEndian([]byte{1, 2, 3, 4})
	require.NoError(t, c.Skip(2))
	require.Equal(t, 2, c.Pos())
	require.Equal(t, 2, c.Remaining())

	require.ErrorIs(t, c.Skip(10), errs.ErrUnexpectedEof)
}

func TestCursorFloats(t *testing.T) {
	// 1.5 as f32 big-endian is 0x3FC00000
	c := NewBigEndian([]byte{0x3F, 0xC0, 0x00, 0x00})
	f, err := c.F32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f)
}
