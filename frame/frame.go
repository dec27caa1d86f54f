// Package frame sniffs and strips the outer compression framing an NBT
// document may arrive wrapped in, before the bytes reach the borrow/owned
// parsers.
package frame

import (
	"fmt"

	"github.com/nbtkit/nbtkit/compress"
	"github.com/nbtkit/nbtkit/errs"
	"github.com/nbtkit/nbtkit/format"
)

// Detect identifies the compression framing of data by magic-byte
// sniffing, without consuming or copying it. Gzip streams start with
// 1F 8B; zlib streams start with a CMF/FLG pair whose second byte is
// 01, 9C, or DA for the compression levels klauspost/compress and the
// reference zlib implementation produce. Anything else is assumed raw.
func Detect(data []byte) format.CompressionType {
	if len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B {
		return format.CompressionGzip
	}

	if len(data) >= 2 && data[0] == 0x78 {
		switch data[1] {
		case 0x01, 0x9C, 0xDA:
			return format.CompressionZlib
		}
	}

	return format.CompressionNone
}

// Decompress sniffs data's framing and returns the unwrapped NBT bytes
// alongside the framing that was detected. Raw data is returned unchanged.
func Decompress(data []byte) ([]byte, format.CompressionType, error) {
	kind := Detect(data)
	if kind == format.CompressionNone {
		return data, kind, nil
	}

	codec, err := compress.CreateCodec(kind, "frame")
	if err != nil {
		return nil, kind, fmt.Errorf("frame: %w", err)
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, kind, &errs.IoError{Err: fmt.Errorf("frame: %s decompress: %w", kind, err)}
	}

	return out, kind, nil
}
