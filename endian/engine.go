// Package endian provides byte order utilities for the NBT wire format.
//
// The Java Edition NBT grammar fixes every multi-byte integer and float
// as big-endian. This package extends Go's standard encoding/binary
// package by combining ByteOrder and AppendByteOrder into a single
// EndianEngine interface so the cursor can be parameterized by byte order
// instead of hardcoding binary.BigEndian — the hook a bedrock/little-endian
// variant would plug into without touching the parser itself. The writer
// and the array swap helpers always use big-endian.
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine() // required for standard Java NBT
//	cur := cursor.New(data, engine)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The
// returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native byte order.
// IntArray/LongArray materialization does not consult it: SwapInt32s and
// SwapInt64s always decode big-endian.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine, used only by the
// bedrock/little-endian NBT variant.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine required by standard
// Java Edition NBT.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
