package nbt

import (
	"bytes"
	"fmt"

	"github.com/arloliu/nbtkit/encoding"
	"github.com/arloliu/nbtkit/endian"
	"github.com/arloliu/nbtkit/errs"
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/internal/options"
	"github.com/arloliu/nbtkit/tag"
)

// Encoder writes named tags in the binary format.
//
// An Encoder holds only its configuration and is safe for concurrent use.
type Encoder struct {
	cfg *config
}

// NewEncoder creates an Encoder. The default is big-endian with standard UTF-8 strings.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := options.Build(defaultConfig, opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Endianness returns the byte order the Encoder writes.
func (e *Encoder) Endianness() format.Endianness {
	return e.cfg.endianness
}

// Encode returns the binary form of a named root tag.
//
// A tag.End root is written as the single End id with no name.
//
// Returns:
//   - []byte: Newly allocated encoded bytes, owned by the caller
//   - error: ErrNilTag, ErrStringTooLong, ErrMixedList or ErrDepthExceeded
func (e *Encoder) Encode(name string, t tag.Tag) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("root: %w", errs.ErrNilTag)
	}

	w := encoding.NewWriter(endian.GetEngine(e.cfg.endianness))
	defer w.Release()
	w.SetModifiedUTF8(e.cfg.modified)

	w.WriteUint8(uint8(t.Type()))
	if t.Type() != format.TagEnd {
		if err := w.WriteString(name); err != nil {
			return nil, fmt.Errorf("root name: %w", err)
		}
		if err := e.payload(w, t, 0); err != nil {
			return nil, err
		}
	}

	return bytes.Clone(w.Bytes()), nil
}

func (e *Encoder) payload(w *encoding.Writer, t tag.Tag, depth int) error {
	switch v := t.(type) {
	case tag.Byte:
		w.WriteInt8(int8(v))
	case tag.Short:
		w.WriteInt16(int16(v))
	case tag.Int:
		w.WriteInt32(int32(v))
	case tag.Long:
		w.WriteInt64(int64(v))
	case tag.Float:
		w.WriteFloat32(float32(v))
	case tag.Double:
		w.WriteFloat64(float64(v))
	case tag.String:
		return w.WriteString(string(v))
	case tag.ByteArray:
		w.WriteInt32(int32(len(v))) //nolint:gosec
		w.WriteInt8s(v)
	case tag.IntArray:
		w.WriteInt32(int32(len(v))) //nolint:gosec
		w.WriteInt32s(v)
	case tag.LongArray:
		w.WriteInt32(int32(len(v))) //nolint:gosec
		w.WriteInt64s(v)
	case *tag.List:
		return e.list(w, v, depth+1)
	case *tag.Compound:
		return e.compound(w, v, depth+1)
	case tag.End:
		return fmt.Errorf("%w: End has no payload", errs.ErrUnsupportedValue)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedValue, t)
	}

	return nil
}

func (e *Encoder) list(w *encoding.Writer, l *tag.List, depth int) error {
	if depth > e.cfg.maxDepth {
		return fmt.Errorf("%w: limit %d", errs.ErrDepthExceeded, e.cfg.maxDepth)
	}
	for i, it := range l.Items {
		if it == nil {
			return fmt.Errorf("list index %d: %w", i, errs.ErrNilTag)
		}
		if it.Type() != l.ElemType {
			return fmt.Errorf("%w: index %d is %s in a list of %s",
				errs.ErrMixedList, i, it.Type(), l.ElemType)
		}
	}

	w.WriteUint8(uint8(l.ElemType))
	w.WriteInt32(int32(len(l.Items))) //nolint:gosec
	for i, it := range l.Items {
		if err := e.payload(w, it, depth); err != nil {
			return fmt.Errorf("list index %d: %w", i, err)
		}
	}

	return nil
}

func (e *Encoder) compound(w *encoding.Writer, c *tag.Compound, depth int) error {
	if depth > e.cfg.maxDepth {
		return fmt.Errorf("%w: limit %d", errs.ErrDepthExceeded, e.cfg.maxDepth)
	}
	for name, v := range c.All() {
		if v == nil {
			return fmt.Errorf("member %q: %w", name, errs.ErrNilTag)
		}
		w.WriteUint8(uint8(v.Type()))
		if err := w.WriteString(name); err != nil {
			return fmt.Errorf("member name: %w", err)
		}
		if err := e.payload(w, v, depth); err != nil {
			return fmt.Errorf("member %q: %w", name, err)
		}
	}
	w.WriteUint8(uint8(format.TagEnd))

	return nil
}

// Encode is a shorthand for NewEncoder(opts...) followed by Encode.
func Encode(name string, t tag.Tag, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(name, t)
}
