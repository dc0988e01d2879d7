package nbt

import (
	"fmt"

	"github.com/arloliu/nbtkit/encoding"
	"github.com/arloliu/nbtkit/endian"
	"github.com/arloliu/nbtkit/errs"
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/tag"
)

// Decoder reads one named tag from a Reader.
//
// A Decoder makes no retry decisions; a failure is final for the byte order
// the Reader was created with.
type Decoder struct {
	r *encoding.Reader
	// MaxDepth limits compound and list nesting. Zero means the package default.
	MaxDepth int
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r *encoding.Reader) *Decoder {
	return &Decoder{r: r, MaxDepth: MaxDepth}
}

// Endianness reports the byte order of the underlying Reader.
func (d *Decoder) Endianness() format.Endianness {
	return endian.Order(d.r.Engine())
}

// Decode reads a type id, a name and the payload.
//
// A top-level End id yields tag.End{} with an empty name. On return the
// Reader is positioned at the first byte after the tag.
//
// Returns:
//   - string: The tag name
//   - tag.Tag: The decoded tree
//   - error: ErrTruncatedStream, ErrUnknownTagType, ErrInvalidText,
//     ErrMalformedLength or ErrDepthExceeded, wrapped with context
func (d *Decoder) Decode() (string, tag.Tag, error) {
	tt, err := d.readType()
	if err != nil {
		return "", nil, err
	}
	if tt == format.TagEnd {
		return "", tag.End{}, nil
	}

	name, err := d.r.ReadString()
	if err != nil {
		return "", nil, fmt.Errorf("root name: %w", err)
	}

	t, err := d.payload(tt, 0)
	if err != nil {
		return "", nil, err
	}

	return name, t, nil
}

func (d *Decoder) readType() (format.TagType, error) {
	at := d.r.Offset()
	id, err := d.r.ReadUint8()
	if err != nil {
		return 0, err
	}

	tt := format.TagType(id)
	if !tt.Valid() {
		return 0, fmt.Errorf("%w: id %d at offset %d", errs.ErrUnknownTagType, id, at)
	}

	return tt, nil
}

func (d *Decoder) readLength() (int, error) {
	at := d.r.Offset()
	n, err := d.r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d at offset %d", errs.ErrMalformedLength, n, at)
	}

	return int(n), nil
}

func (d *Decoder) payload(tt format.TagType, depth int) (tag.Tag, error) {
	switch tt {
	case format.TagByte:
		v, err := d.r.ReadInt8()
		return tag.Byte(v), err
	case format.TagShort:
		v, err := d.r.ReadInt16()
		return tag.Short(v), err
	case format.TagInt:
		v, err := d.r.ReadInt32()
		return tag.Int(v), err
	case format.TagLong:
		v, err := d.r.ReadInt64()
		return tag.Long(v), err
	case format.TagFloat:
		v, err := d.r.ReadFloat32()
		return tag.Float(v), err
	case format.TagDouble:
		v, err := d.r.ReadFloat64()
		return tag.Double(v), err
	case format.TagString:
		v, err := d.r.ReadString()
		return tag.String(v), err
	case format.TagByteArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		v, err := d.r.ReadInt8s(n)

		return tag.ByteArray(v), err
	case format.TagIntArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		v, err := d.r.ReadInt32s(n)

		return tag.IntArray(v), err
	case format.TagLongArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		v, err := d.r.ReadInt64s(n)

		return tag.LongArray(v), err
	case format.TagList:
		return d.list(depth + 1)
	case format.TagCompound:
		return d.compound(depth + 1)
	default:
		return nil, fmt.Errorf("%w: %s has no payload", errs.ErrUnknownTagType, tt)
	}
}

func (d *Decoder) checkDepth(depth int) error {
	limit := d.MaxDepth
	if limit <= 0 {
		limit = MaxDepth
	}
	if depth > limit {
		return fmt.Errorf("%w: limit %d at offset %d", errs.ErrDepthExceeded, limit, d.r.Offset())
	}

	return nil
}

func (d *Decoder) list(depth int) (tag.Tag, error) {
	if err := d.checkDepth(depth); err != nil {
		return nil, err
	}

	id, err := d.r.ReadUint8()
	if err != nil {
		return nil, err
	}
	elem := format.TagType(id)

	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return tag.NewList(elem), nil
	}

	if !elem.Valid() {
		return nil, fmt.Errorf("%w: list element id %d", errs.ErrUnknownTagType, id)
	}
	if elem == format.TagEnd {
		return nil, fmt.Errorf("%w: %d End elements", errs.ErrMalformedLength, n)
	}
	// every payload other than End occupies at least one byte
	if n > d.r.Remaining() {
		return nil, fmt.Errorf("%w: list of %d at offset %d, have %d bytes",
			errs.ErrTruncatedStream, n, d.r.Offset(), d.r.Remaining())
	}

	items := make([]tag.Tag, n)
	for i := range items {
		v, err := d.payload(elem, depth)
		if err != nil {
			return nil, fmt.Errorf("list index %d: %w", i, err)
		}
		items[i] = v
	}

	return &tag.List{ElemType: elem, Items: items}, nil
}

func (d *Decoder) compound(depth int) (tag.Tag, error) {
	if err := d.checkDepth(depth); err != nil {
		return nil, err
	}

	c := tag.NewCompound()
	for {
		tt, err := d.readType()
		if err != nil {
			return nil, err
		}
		if tt == format.TagEnd {
			return c, nil
		}

		name, err := d.r.ReadString()
		if err != nil {
			return nil, err
		}

		v, err := d.payload(tt, depth)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", name, err)
		}
		c.Set(name, v)
	}
}
