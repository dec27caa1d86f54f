package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/nbtkit/nbtkit/errs"
)

// ZlibCompressor is the framing Minecraft uses for network chunk payloads.
// Detected on read by the frame package via its 78 01/9C/DA magic bytes.
type ZlibCompressor struct{}

var _ Codec = ZlibCompressor{}

// NewZlibCompressor creates a new zlib compressor.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress zlib-frames the input data at the default compression level.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, &errs.IoError{Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, &errs.IoError{Err: err}
	}

	return buf.Bytes(), nil
}

// Decompress reverses zlib framing.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &errs.IoError{Err: err}
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, &errs.IoError{Err: err}
	}

	return out, nil
}
