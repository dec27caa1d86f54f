package borrow

import (
	"testing"

	"github.com/nbtkit/nbtkit/cursor"
	"github.com/nbtkit/nbtkit/errs"
	"github.com/nbtkit/nbtkit/tape"
	"github.com/stretchr/testify/require"
)

func readBytes(t *testing.T, b []byte) *Nbt {
	t.Helper()
	c := cursor.NewBigEndian(b)
	n, err := Read(c, Options{})
	require.NoError(t, err)

	return n
}

// Empty root.
func TestEmptyRoot(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0x00})
	n, err := Read(c, Options{})
	require.NoError(t, err)
	require.Nil(t, n)
}

// Minimal named compound.
func TestMinimalNamedCompound(t *testing.T) {
	n := readBytes(t, []byte{0x0A, 0x00, 0x00, 0x00})
	require.NotNil(t, n)
	require.Equal(t, NameRef{Offset: 3, Len: 0}, n.Name)

	root, ok := n.Root()
	require.True(t, ok)
	require.Equal(t, 0, root.Len())
}

// Single short value.
func TestSingleShort(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x02, 0x00, 0x03, 'f', 'o', 'o', 0x00, 0x07,
		0x00,
	})
	root, ok := n.Root()
	require.True(t, ok)
	require.Equal(t, 1, root.Len())

	v, ok := root.Short("foo")
	require.True(t, ok)
	require.EqualValues(t, 7, v)

	_, ok = root.Short("missing")
	require.False(t, ok)
}

// Nested list of compounds.
func TestNestedListOfCompounds(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x0A, 0x00, 0x00, 0x00, 0x02,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x01, 0x00,
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x02, 0x00,
		0x00,
	})
	root, ok := n.Root()
	require.True(t, ok)

	l, ok := root.List("l")
	require.True(t, ok)
	require.Equal(t, 2, l.Len())
	require.Equal(t, tape.KindCompound, l.ElementKind())

	compounds, ok := l.Compounds()
	require.True(t, ok)
	require.Len(t, compounds, 2)

	x0, ok := compounds[0].Int("x")
	require.True(t, ok)
	require.EqualValues(t, 1, x0)

	x1, ok := compounds[1].Int("x")
	require.True(t, ok)
	require.EqualValues(t, 2, x1)
}

// String with an astral character.
func TestAstralString(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x08, 0x00, 0x01, 's', 0x00, 0x06, 0xED, 0xA0, 0x81, 0xED, 0xB0, 0xB7,
		0x00,
	})
	root, ok := n.Root()
	require.True(t, ok)

	s, ok := root.String("s")
	require.True(t, ok)
	require.Equal(t, "\U00010437", s)
}

// Malformed byte array with a negative length.
func TestNegativeByteArrayLength(t *testing.T) {
	c := cursor.NewBigEndian([]byte{
		0x0A, 0x00, 0x00,
		0x07, 0x00, 0x01, 'a', 0xFF, 0xFF, 0xFF, 0xFF,
	})
	_, err := Read(c, Options{})
	require.ErrorIs(t, err, errs.ErrNegativeLength)
}

func TestUnknownRootKind(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0xFE, 0x00, 0x00})
	_, err := Read(c, Options{})
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestUnknownChildKind(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0x0A, 0x00, 0x00, 0xFE, 0x00, 0x00})
	_, err := Read(c, Options{})
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestUnexpectedEof(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0x0A, 0x00, 0x00, 0x02, 0x00, 0x03, 'f', 'o'})
	_, err := Read(c, Options{})
	require.ErrorIs(t, err, errs.ErrUnexpectedEof)
}

func TestArraySizeBoundNeverAllocatesN(t *testing.T) {
	c := cursor.NewBigEndian([]byte{
		0x0A, 0x00, 0x00,
		0x0B, 0x00, 0x01, 'a', 0x7F, 0xFF, 0xFF, 0xFF, // IntArray, declared len ~2 billion
	})
	_, err := Read(c, Options{})
	require.ErrorIs(t, err, errs.ErrUnexpectedEof)
}

func TestDepthBound(t *testing.T) {
	const limit = 4
	var buf []byte
	buf = append(buf, 0x0A, 0x00, 0x00) // root
	for i := 0; i < limit+2; i++ {
		buf = append(buf, 0x0A, 0x00, 0x01, 'c') // nested compound named "c"
	}
	for i := 0; i < limit+3; i++ {
		buf = append(buf, 0x00) // close every compound including root
	}

	c := cursor.NewBigEndian(buf)
	_, err := Read(c, Options{MaxDepth: limit})
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

func TestEmptyListOfEndKindIsEmpty(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x00, 0x00, 0x00, 0x00, 0x05, // elemKind=End, len=5
		0x00,
	})
	root, _ := n.Root()
	l, ok := root.List("l")
	require.True(t, ok)
	require.Equal(t, 0, l.Len())
}

func TestFixedWidthListIndexIsO1(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x03, 0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
		0x00,
	})
	root, _ := n.Root()
	l, ok := root.List("l")
	require.True(t, ok)
	require.Equal(t, 3, l.Len())

	for i, want := range []int32{1, 2, 3} {
		v, ok := l.Index(i)
		require.True(t, ok)
		got, ok := v.Int()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestDuplicateNamesReturnFirstMatch(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'x', 0x01,
		0x01, 0x00, 0x01, 'x', 0x02,
		0x00,
	})
	root, _ := n.Root()
	v, ok := root.Byte("x")
	require.True(t, ok)
	require.EqualValues(t, 1, v)
}

func TestIndexedCompoundMatchesLinearScan(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'a', 0x01,
		0x01, 0x00, 0x01, 'b', 0x02,
		0x01, 0x00, 0x01, 'c', 0x03,
		0x00,
	})
	root, _ := n.Root()
	indexed := NewIndexedCompound(root)

	for _, name := range []string{"a", "b", "c", "missing"} {
		want, wantOk := root.Byte(name)
		got, gotOk := func() (int8, bool) {
			v, ok := indexed.Get(name)
			if !ok {
				return 0, false
			}

			return v.Byte()
		}()
		require.Equal(t, wantOk, gotOk, name)
		require.Equal(t, want, got, name)
	}
}

func TestByteArray(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x07, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03,
		0x00,
	})
	root, _ := n.Root()
	v, ok := root.ByteArray("a")
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, v)
}

func TestLongArray(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x0C, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
		0x00,
	})
	root, _ := n.Root()
	v, ok := root.LongArray("a")
	require.True(t, ok)
	require.Equal(t, []int64{1, 2}, v)
}

func TestKindMismatchReturnsFalse(t *testing.T) {
	n := readBytes(t, []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'a', 0x05,
		0x00,
	})
	root, _ := n.Root()
	_, ok := root.Int("a")
	require.False(t, ok)
}

func TestReadUnnamed(t *testing.T) {
	c := cursor.NewBigEndian([]byte{0x0A, 0x01, 0x00, 0x00, 0x05, 0x00})
	n, err := ReadUnnamed(c, Options{})
	require.NoError(t, err)
	root, ok := n.Root()
	require.True(t, ok)
	require.Equal(t, 1, root.Len())

	v, ok := root.Byte("")
	require.True(t, ok)
	require.EqualValues(t, 5, v)
}
