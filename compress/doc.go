// Package compress provides the codecs used to frame an NBT document's
// serialized bytes.
//
// Two of the framings (gzip, zlib) are the ones the NBT wire format itself
// defines and that the frame package sniffs on read. The rest (zstd, S2,
// LZ4) are an enrichment a writer can opt into explicitly when it does not
// need a Java/bedrock client to be able to read the compressed blob back.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
// **Gzip** (format.CompressionGzip) - github.com/klauspost/compress/gzip.
// The framing Minecraft uses for on-disk player/level/region data; detected
// by its 1F 8B magic bytes.
//
// **Zlib** (format.CompressionZlib) - github.com/klauspost/compress/zlib.
// The framing Minecraft uses for network chunk payloads; detected by its
// 78 01/9C/DA magic bytes.
//
// **NoOp** (format.CompressionNone) - passes data through unchanged. Use
// when the caller wants raw, unframed NBT bytes.
//
// **Zstandard** (format.CompressionZstd) - github.com/klauspost/compress/zstd,
// with an optional cgo-backed github.com/valyala/gozstd variant behind a
// `nobuild` build tag, mirroring how the dependency is wired upstream.
// Best compression ratio of the enrichment set; pick this for archival
// writes where read-back compatibility with another NBT implementation's
// gzip/zlib expectation does not matter.
//
// **S2** (format.CompressionS2) - github.com/klauspost/compress/s2. Fast
// Snappy-family alternative, good balance of speed and ratio.
//
// **LZ4** (format.CompressionLZ4) - github.com/pierrec/lz4/v4. Very fast
// decompression, useful when documents are read far more often than
// written.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
