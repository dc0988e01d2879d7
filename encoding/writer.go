package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/nbtkit/endian"
	"github.com/arloliu/nbtkit/errs"
	"github.com/arloliu/nbtkit/internal/pool"
)

// MaxStringLength is the largest encoded string an NBT u16 length prefix can describe.
const MaxStringLength = math.MaxUint16

// Writer appends fixed-width values to a pooled buffer.
//
// Call Release once the bytes are no longer needed; the slice returned by
// Bytes is invalid afterwards.
type Writer struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	modified bool
}

// NewWriter creates a Writer backed by a buffer from the encode pool.
//
// Parameters:
//   - engine: Byte order for multi-byte fields
//
// Returns:
//   - *Writer: An empty writer emitting standard UTF-8 strings
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.GetEncodeBuffer(),
		engine: engine,
	}
}

// SetModifiedUTF8 selects modified UTF-8 for subsequent WriteString calls.
func (w *Writer) SetModifiedUTF8(enabled bool) {
	w.modified = enabled
}

// WriteUint8 appends one unsigned byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.B = append(w.buf.B, v)
}

// WriteInt8 appends one signed byte.
func (w *Writer) WriteInt8(v int8) {
	w.buf.B = append(w.buf.B, byte(v))
}

// WriteUint16 appends an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// WriteInt16 appends a signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, uint16(v)) //nolint:gosec
}

// WriteInt32 appends a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(v)) //nolint:gosec
}

// WriteInt64 appends a signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(v)) //nolint:gosec
}

// WriteFloat32 appends a 32-bit IEEE 754 float.
func (w *Writer) WriteFloat32(v float32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, math.Float32bits(v))
}

// WriteFloat64 appends a 64-bit IEEE 754 float.
func (w *Writer) WriteFloat64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}

// WriteString appends a u16 length-prefixed string.
//
// Returns errs.ErrStringTooLong if the encoded form exceeds MaxStringLength
// bytes; nothing is written in that case.
func (w *Writer) WriteString(s string) error {
	var b []byte
	if w.modified {
		b = EncodeModifiedUTF8(s)
	} else {
		b = []byte(s)
	}

	if len(b) > MaxStringLength {
		return fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrStringTooLong, len(b), MaxStringLength)
	}

	w.buf.Grow(2 + len(b))
	w.WriteUint16(uint16(len(b))) //nolint:gosec
	w.buf.MustWrite(b)

	return nil
}

// WriteInt8s appends the raw bytes of v.
func (w *Writer) WriteInt8s(v []int8) {
	w.buf.Grow(len(v))
	for _, x := range v {
		w.buf.B = append(w.buf.B, byte(x))
	}
}

// WriteInt32s appends each element of v.
func (w *Writer) WriteInt32s(v []int32) {
	w.buf.Grow(4 * len(v))
	for _, x := range v {
		w.WriteInt32(x)
	}
}

// WriteInt64s appends each element of v.
func (w *Writer) WriteInt64s(v []int64) {
	w.buf.Grow(8 * len(v))
	for _, x := range v {
		w.WriteInt64(x)
	}
}

// Bytes returns the written data. The slice shares the pooled buffer.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Release returns the buffer to the pool. The Writer must not be used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutEncodeBuffer(w.buf)
		w.buf = nil
	}
}
