package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/nbtkit/endian"
	"github.com/arloliu/nbtkit/errs"
)

// Reader is a forward-only cursor over an in-memory buffer.
//
// Reader is not safe for concurrent use; create one per decode call.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data.
//
// Parameters:
//   - data: Input bytes; the Reader does not copy them
//   - engine: Byte order for multi-byte fields
//
// Returns:
//   - *Reader: A cursor at offset 0
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Engine returns the byte order the Reader was created with.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// Offset returns the index of the first unread byte.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// next consumes n bytes and returns them without copying.
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedStream, n, r.off, r.Remaining())
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// ensure fails with ErrTruncatedStream unless count elements of width bytes
// each are still available. Used before allocating arrays so that a corrupt
// length cannot trigger a huge allocation.
func (r *Reader) ensure(count, width int) error {
	if count > r.Remaining()/width {
		return fmt.Errorf("%w: %d elements of %d bytes at offset %d, have %d bytes",
			errs.ErrTruncatedStream, count, width, r.off, r.Remaining())
	}

	return nil
}

// ReadUint8 reads one unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt8 reads one signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err //nolint:gosec
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err //nolint:gosec
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b)), nil //nolint:gosec
}

// ReadInt64 reads a signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}

	return int64(r.engine.Uint64(b)), nil //nolint:gosec
}

// ReadFloat32 reads a 32-bit IEEE 754 float.
func (r *Reader) ReadFloat32() (float32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(r.engine.Uint32(b)), nil
}

// ReadFloat64 reads a 64-bit IEEE 754 float.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}

// ReadString reads a u16 length-prefixed string in UTF-8 or modified UTF-8.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	b, err := r.next(int(n))
	if err != nil {
		return "", err
	}

	s, err := DecodeText(b)
	if err != nil {
		return "", fmt.Errorf("string at offset %d: %w", r.off-int(n), err)
	}

	return s, nil
}

// ReadInt8s reads n signed bytes into a new slice.
func (r *Reader) ReadInt8s(n int) ([]int8, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}

	out := make([]int8, n)
	for i, c := range b {
		out[i] = int8(c) //nolint:gosec
	}

	return out, nil
}

// ReadInt32s reads n signed 32-bit integers into a new slice.
func (r *Reader) ReadInt32s(n int) ([]int32, error) {
	if err := r.ensure(n, 4); err != nil {
		return nil, err
	}

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.engine.Uint32(r.data[r.off:])) //nolint:gosec
		r.off += 4
	}

	return out, nil
}

// ReadInt64s reads n signed 64-bit integers into a new slice.
func (r *Reader) ReadInt64s(n int) ([]int64, error) {
	if err := r.ensure(n, 8); err != nil {
		return nil, err
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = int64(r.engine.Uint64(r.data[r.off:])) //nolint:gosec
		r.off += 8
	}

	return out, nil
}
