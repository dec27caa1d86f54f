package endian

import "encoding/binary"

// SwapInt16s converts a big-endian-encoded byte slice into a native-endian
// []int16. The source slice is read but never mutated. The loop body is
// fixed-stride and branch-free per element so the compiler can auto-vectorize
// it; len(src) must be a multiple of 2.
func SwapInt16s(src []byte) []int16 {
	n := len(src) / 2
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(binary.BigEndian.Uint16(src[i*2 : i*2+2]))
	}

	return out
}

// SwapInt32s converts a big-endian-encoded byte slice into a native-endian
// []int32. len(src) must be a multiple of 4.
func SwapInt32s(src []byte) []int32 {
	n := len(src) / 4
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.BigEndian.Uint32(src[i*4 : i*4+4]))
	}

	return out
}

// SwapInt64s converts a big-endian-encoded byte slice into a native-endian
// []int64. len(src) must be a multiple of 8.
func SwapInt64s(src []byte) []int64 {
	n := len(src) / 8
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = int64(binary.BigEndian.Uint64(src[i*8 : i*8+8]))
	}

	return out
}

// PutInt32sInto writes vals as big-endian into dst, growing the caller's
// slice is not this function's job — dst must already have len(vals)*4 bytes
// available. Used by the writer for IntArray payloads.
func PutInt32sInto(dst []byte, vals []int32) {
	for i, v := range vals {
		binary.BigEndian.PutUint32(dst[i*4:i*4+4], uint32(v))
	}
}

// PutInt64sInto writes vals as big-endian into dst; dst must already have
// len(vals)*8 bytes available. Used by the writer for LongArray payloads.
func PutInt64sInto(dst []byte, vals []int64) {
	for i, v := range vals {
		binary.BigEndian.PutUint64(dst[i*8:i*8+8], uint64(v))
	}
}
