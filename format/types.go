// Package format defines the small set of wire-level enumerations shared
// across the codec: the outer compression framing NBT documents are
// optionally wrapped in.
package format

// CompressionType identifies the framing/compression applied to an NBT
// document's bytes, detected by magic-byte sniffing or chosen
// explicitly by a writer.
type CompressionType uint8

const (
	// CompressionNone means the bytes are raw, unframed NBT.
	CompressionNone CompressionType = iota
	// CompressionGzip is detected by the 1F 8B magic bytes and is the
	// framing Minecraft uses for on-disk player/level data.
	CompressionGzip
	// CompressionZlib is detected by the 78 01/9C/DA magic bytes and is
	// the framing Minecraft uses for network chunk payloads.
	CompressionZlib
	// CompressionZstd, CompressionS2, and CompressionLZ4 are not part of
	// the standard NBT wire grammar; they are an enrichment the writer
	// offers for callers who want smaller on-disk blobs than zlib gives
	// and do not need compatibility with a Java/bedrock client reading
	// that particular blob back.
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
