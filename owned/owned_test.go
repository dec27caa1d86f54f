package owned

import (
	"testing"

	"github.com/nbtkit/nbtkit/borrow"
	"github.com/nbtkit/nbtkit/cursor"
	"github.com/nbtkit/nbtkit/tape"
	"github.com/stretchr/testify/require"
)

func readN(t *testing.T, b []byte) *Nbt {
	t.Helper()
	c := cursor.NewBigEndian(b)
	n, err := Read(c, borrow.Options{})
	require.NoError(t, err)
	require.NotNil(t, n)

	return n
}

func TestReadAbsent(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0x00})
	n, err := Read(c, borrow.Options{})
	require.NoError(t, err)
	require.Nil(t, n)
}

func TestReadMinimalCompound(t *testing.T) {
	n := readN(t, []byte{0x0A, 0x00, 0x00, 0x00})
	require.Equal(t, "", n.Name)
	require.Equal(t, tape.KindCompound, n.Root.Kind)
	require.Empty(t, n.Root.Compound)
}

func TestReadSingleShort(t *testing.T) {
	n := readN(t, []byte{
		0x0A, 0x00, 0x00,
		0x02, 0x00, 0x03, 'f', 'o', 'o', 0x00, 0x07,
		0x00,
	})
	v, ok := n.Root.Get("foo")
	require.True(t, ok)
	require.Equal(t, tape.KindShort, v.Kind)
	require.EqualValues(t, 7, v.Short)
}

func TestReadNestedListOfCompounds(t *testing.T) {
	n := readN(t, []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x0A, 0x00, 0x00, 0x00, 0x02,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x01, 0x00,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x02, 0x00,
		0x00,
	})
	l, ok := n.Root.Get("l")
	require.True(t, ok)
	require.Equal(t, tape.KindList, l.Kind)
	require.Equal(t, tape.KindCompound, l.ListKind)
	require.Len(t, l.List, 2)

	x1, ok := l.List[1].Get("x")
	require.True(t, ok)
	require.EqualValues(t, 2, x1.Int)
}

func TestReadAstralString(t *testing.T) {
	n := readN(t, []byte{
		0x0A, 0x00, 0x00,
		0x08, 0x00, 0x01, 's', 0x00, 0x06, 0xED, 0xA0, 0x81, 0xED, 0xB0, 0xB7,
		0x00,
	})
	v, ok := n.Root.Get("s")
	require.True(t, ok)
	require.Equal(t, "\U00010437", v.Str)
}

func TestReadUnnamed(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0x0A, 0x01, 0x00, 0x00, 0x05, 0x00})
	n, err := ReadUnnamed(c, borrow.Options{})
	require.NoError(t, err)
	v, ok := n.Root.Get("")
	require.True(t, ok)
	require.EqualValues(t, 5, v.Byte)
}

func TestReadArrays(t *testing.T) {
	n := readN(t, []byte{
		0x0A, 0x00, 0x00,
		0x07, 0x00, 0x02, 'b', 'a', 0x00, 0x00, 0x00, 0x02, 0x01, 0x02,
		0x0B, 0x00, 0x02, 'i', 'a', 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x05,
		0x0C, 0x00, 0x02, 'l', 'a', 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09,
		0x00,
	})
	ba, ok := n.Root.Get("ba")
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 0x02}, ba.ByteArray)

	ia, ok := n.Root.Get("ia")
	require.True(t, ok)
	require.Equal(t, []int32{5}, ia.IntArray)

	la, ok := n.Root.Get("la")
	require.True(t, ok)
	require.Equal(t, []int64{9}, la.LongArray)
}
