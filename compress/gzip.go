package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/nbtkit/nbtkit/errs"
)

// GzipCompressor is the framing Minecraft uses for on-disk player/level/
// region NBT data. Detected on read by the frame package via its 1F 8B
// magic bytes.
type GzipCompressor struct{}

var _ Codec = GzipCompressor{}

// NewGzipCompressor creates a new gzip compressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress gzips the input data at the default compression level.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, &errs.IoError{Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, &errs.IoError{Err: err}
	}

	return buf.Bytes(), nil
}

// Decompress reverses gzip framing.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
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
