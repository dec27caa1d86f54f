// Package pool provides pooled growable byte buffers used by the writer,
// so repeated encode cycles amortize allocations instead of paying for a
// fresh buffer every time. The borrow parser's tape keeps its own pools
// and does not use this package.
package pool

import (
	"io"
	"sync"
)

// DocBufferDefaultSize and DocBufferMaxThreshold size the pool used for a
// single NBT document's writer output. Most world-save and network NBT
// payloads are well under 64KiB uncompressed.
const (
	DocBufferDefaultSize  = 1024 * 16  // 16KiB
	DocBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice with an amortized growth strategy,
// reusable across pool checkouts.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte, growing if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer has sufficient capacity, Grow does
// nothing.
//
// The growth strategy is as follows:
//   - For small buffers (<64KB), grow by DocBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := DocBufferDefaultSize
	if cap(bb.B) > 4*DocBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// It implements io.Writer so a ByteBuffer can be used directly as a gzip/zlib
// compression sink.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers. The pool can be
// configured with a maximum size threshold to avoid retaining overly
// large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return // Discard overly large buffers to prevent memory bloat.
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var docDefaultPool = NewByteBufferPool(DocBufferDefaultSize, DocBufferMaxThreshold)

// GetDocBuffer retrieves a ByteBuffer from the default document pool.
func GetDocBuffer() *ByteBuffer {
	return docDefaultPool.Get()
}

// PutDocBuffer returns a ByteBuffer to the default document pool.
func PutDocBuffer(bb *ByteBuffer) {
	docDefaultPool.Put(bb)
}
