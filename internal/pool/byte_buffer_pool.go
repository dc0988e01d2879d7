package pool

import (
	"io"
	"sync"
)

// Default sizes for pooled buffers. Save-metadata files such as level.dat are
// a few KiB, so small defaults avoid over-allocating while the thresholds keep
// an occasional large structure file from pinning memory in the pool.
const (
	EncodeBufferDefaultSize  = 1024 * 4        // 4KiB
	EncodeBufferMaxThreshold = 1024 * 256      // 256KiB
	TextBufferDefaultSize    = 1024 * 16       // 16KiB
	TextBufferMaxThreshold   = 1024 * 1024 * 1 // 1MiB
)

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

// String returns the buffer contents as a string copy.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
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

// WriteString appends s to the buffer. It never fails.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteByte appends c to the buffer. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// Small buffers grow by EncodeBufferDefaultSize; buffers larger than four times
// that grow by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := EncodeBufferDefaultSize
	if cap(bb.B) > 4*EncodeBufferDefaultSize {
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
// Buffers whose capacity grew beyond maxThreshold are dropped on Put instead
// of being retained.
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
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	encodeDefaultPool = NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)
	textDefaultPool   = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)
)

// GetEncodeBuffer retrieves a ByteBuffer for binary tag encoding.
func GetEncodeBuffer() *ByteBuffer {
	return encodeDefaultPool.Get()
}

// PutEncodeBuffer returns a ByteBuffer to the binary encoding pool.
func PutEncodeBuffer(bb *ByteBuffer) {
	encodeDefaultPool.Put(bb)
}

// GetTextBuffer retrieves a ByteBuffer for SNBT and typed JSON output.
func GetTextBuffer() *ByteBuffer {
	return textDefaultPool.Get()
}

// PutTextBuffer returns a ByteBuffer to the text pool.
func PutTextBuffer(bb *ByteBuffer) {
	textDefaultPool.Put(bb)
}
