package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapInt16s(t *testing.T) {
	src := []byte{0x00, 0x01, 0xFF, 0xFF, 0x7F, 0xFF}
	got := SwapInt16s(src)
	require.Equal(t, []int16{1, -1, 32767}, got)
}

func TestSwapInt32s(t *testing.T) {
	src := []byte{0x00, 0x00, 0x00, 0x02, 0xFF, 0xFF, 0xFF, 0xFF}
	got := SwapInt32s(src)
	require.Equal(t, []int32{2, -1}, got)
}

func TestSwapInt64s(t *testing.T) {
	src := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	got := SwapInt64s(src)
	require.Equal(t, []int64{3, -1}, got)
}

func TestPutInt32sIntoRoundTrip(t *testing.T) {
	vals := []int32{1, -2, 2147483647, -2147483648}
	dst := make([]byte, len(vals)*4)
	PutInt32sInto(dst, vals)
	require.Equal(t, vals, SwapInt32s(dst))
}

func TestPutInt64sIntoRoundTrip(t *testing.T) {
	vals := []int64{1, -2, 9223372036854775807, -9223372036854775808}
	dst := make([]byte, len(vals)*8)
	PutInt64sInto(dst, vals)
	require.Equal(t, vals, SwapInt64s(dst))
}
