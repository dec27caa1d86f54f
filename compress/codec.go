package compress

import (
	"fmt"

	"github.com/nbtkit/nbtkit/format"
)

// Compressor compresses an NBT document's serialized bytes for output
// framing (gzip, zlib, and the enrichment codecs zstd, S2,
// and LZ4).
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated except
	//     for NoOpCompressor, which returns the input slice itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's framing.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use
// or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with an incompatible algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of one compress/decompress operation,
// useful when a caller wants to pick a framing based on observed ratio
// rather than a fixed default.
type CompressionStats struct {
	Algorithm format.CompressionType

	OriginalSize int64

	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	CompressionTimeNs int64

	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type. It covers every type: gzip and zlib (used by the frame
// package to decompress sniffed framing, and by the writer to compress) as
// well as the enrichment set (zstd, S2, LZ4) and the no-op codec.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZlib: NewZlibCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
