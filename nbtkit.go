// Package nbtkit provides a high-level, allocation-conscious codec for the
// Named Binary Tag (NBT) format used by Minecraft: Java Edition worlds,
// player data, and network packets.
//
// nbtkit exposes two decoding strategies:
//
//   - borrow: a zero-copy tape parser that ties every string, byte array,
//     int array, and long array to the lifetime of the source buffer. Best
//     for read-heavy workloads (world scanning, chunk inspection) where the
//     source bytes outlive the parse.
//   - owned: a fully detached tree, materialized by running the borrow
//     parser and converting its tape into a tagged-union tree. Best when the
//     source buffer will be discarded or mutated after parsing.
//
// # Basic Usage
//
// Reading a gzip- or zlib-framed NBT document (as found in .dat player/level
// files) into an owned tree:
//
//	data, _ := os.ReadFile("level.dat")
//	doc, err := nbtkit.ReadOwned(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	version, _ := doc.Root.Get("DataVersion")
//	fmt.Println(version.Int)
//
// Reading the same bytes zero-copy:
//
//	doc, err := nbtkit.ReadBorrow(data)
//	root, _ := doc.Root()
//	name, _ := root.String("LevelName")
//
// Writing an owned tree back out, gzip-framed:
//
//	var buf bytes.Buffer
//	err := nbtkit.WriteCompressed(&buf, doc, format.CompressionGzip)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the borrow,
// owned, writer, and frame packages, covering the common case of "read a
// blob of possibly-compressed bytes, get a document". For fine-grained
// control over max depth, root-name handling, or direct tape access, use
// those packages directly.
package nbtkit

import (
	"bytes"
	"io"

	"github.com/nbtkit/nbtkit/borrow"
	"github.com/nbtkit/nbtkit/cursor"
	"github.com/nbtkit/nbtkit/format"
	"github.com/nbtkit/nbtkit/frame"
	"github.com/nbtkit/nbtkit/owned"
	"github.com/nbtkit/nbtkit/writer"
)

// ReadOwned detects and strips any gzip/zlib framing on data, then parses
// the result into a fully detached owned tree.
//
// Parameters:
//   - data: raw bytes, optionally gzip- or zlib-compressed
//
// Returns:
//   - *owned.Nbt: the parsed document, or nil if the root tag is End (the
//     absent-document case)
//   - error: a decode error from the frame or borrow layer
//
// Example:
//
//	doc, err := nbtkit.ReadOwned(fileBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if doc == nil {
//	    return // empty document
//	}
func ReadOwned(data []byte) (*owned.Nbt, error) {
	return ReadOwnedWithOptions(data, borrow.Options{})
}

// ReadOwnedWithOptions is ReadOwned with explicit borrow.Options, most
// commonly to raise or lower MaxDepth for untrusted input.
func ReadOwnedWithOptions(data []byte, opts borrow.Options) (*owned.Nbt, error) {
	raw, _, err := frame.Decompress(data)
	if err != nil {
		return nil, err
	}

	return owned.Read(cursor.NewBigEndian(raw), opts)
}

// ReadBorrow detects and strips any gzip/zlib framing on data, then parses
// the result into a zero-copy borrow view. The returned *borrow.Nbt borrows
// from a decompressed copy of data when framing was present, or from data
// itself when it was raw; callers must not mutate data for the lifetime of
// the returned document in the raw case.
//
// Parameters:
//   - data: raw bytes, optionally gzip- or zlib-compressed
//
// Returns:
//   - *borrow.Nbt: the parsed document, or nil if the root tag is End
//   - error: a decode error from the frame or borrow layer
func ReadBorrow(data []byte) (*borrow.Nbt, error) {
	return ReadBorrowWithOptions(data, borrow.Options{})
}

// ReadBorrowWithOptions is ReadBorrow with explicit borrow.Options.
func ReadBorrowWithOptions(data []byte, opts borrow.Options) (*borrow.Nbt, error) {
	raw, _, err := frame.Decompress(data)
	if err != nil {
		return nil, err
	}

	return borrow.Read(cursor.NewBigEndian(raw), opts)
}

// WriteOwned serializes doc to w as raw (uncompressed) NBT wire bytes.
//
// A nil doc writes a single End byte, matching the absent-document case
// ReadOwned reports (nil, nil) for a lone End byte.
func WriteOwned(w io.Writer, doc *owned.Nbt) error {
	return writer.WriteOwned(w, doc)
}

// WriteCompressed serializes doc to w and frames the result with kind.
// format.CompressionNone writes raw bytes identical to WriteOwned.
func WriteCompressed(w io.Writer, doc *owned.Nbt, kind format.CompressionType) error {
	return writer.WriteCompressed(w, doc, kind)
}

// Marshal serializes doc to a new byte slice, uncompressed. It is a
// convenience wrapper around WriteOwned for callers who want bytes rather
// than an io.Writer sink.
func Marshal(doc *owned.Nbt) ([]byte, error) {
	var buf bytes.Buffer
	if err := writer.WriteOwned(&buf, doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal is an alias for ReadOwned, matching the encoding/* package
// naming convention for callers who reach for nbtkit as a drop-in.
func Unmarshal(data []byte) (*owned.Nbt, error) {
	return ReadOwned(data)
}
