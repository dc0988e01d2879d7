package jsontag

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/nbtkit/errs"
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/tag"
)

// FromJSON parses JSON or JSONC text and infers a tag tree from it.
func FromJSON(data []byte) (tag.Tag, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Encode(v)
}

// Encode infers a tag tree from a JSON-shaped Go value.
//
// Accepted values are Object, map[string]any (members in sorted key order),
// []any, string, bool, nil, every Go integer kind, float32, float64,
// json.Number and tag.Tag, which is passed through unchanged. Note that
// encoding/json decodes every number to float64 unless UseNumber is set, so
// such input would infer Float for integers; Parse avoids this.
//
// Returns:
//   - tag.Tag: The inferred tree
//   - error: errs.ErrUnsupportedValue for other types and for integers
//     outside the int64 range
func Encode(v any) (tag.Tag, error) {
	if n, ok, err := asInt64(v); ok || err != nil {
		if err != nil {
			return nil, err
		}

		return narrowest(n), nil
	}

	switch x := v.(type) {
	case nil:
		return tag.String(""), nil
	case bool:
		if x {
			return tag.Byte(1), nil
		}

		return tag.Byte(0), nil
	case string:
		return tag.String(x), nil
	case float32:
		return tag.Float(x), nil
	case float64:
		return tag.Float(float32(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", errs.ErrUnsupportedValue, x)
		}

		return tag.Float(float32(f)), nil
	case Object:
		c := tag.NewCompound()
		for _, m := range x {
			child, err := Encode(m.Value)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", m.Key, err)
			}
			c.Set(m.Key, child)
		}

		return c, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		c := tag.NewCompound()
		for _, k := range keys {
			child, err := Encode(x[k])
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			c.Set(k, child)
		}

		return c, nil
	case []any:
		return encodeArray(x)
	case tag.Tag:
		return x, nil
	}

	return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedValue, v)
}

// narrowest picks the smallest integer tag whose range holds n.
func narrowest(n int64) tag.Tag {
	switch {
	case n >= math.MinInt8 && n <= math.MaxInt8:
		return tag.Byte(n)
	case n >= math.MinInt16 && n <= math.MaxInt16:
		return tag.Short(n)
	case n >= math.MinInt32 && n <= math.MaxInt32:
		return tag.Int(n)
	default:
		return tag.Long(n)
	}
}

func encodeArray(items []any) (tag.Tag, error) {
	ints := make([]int64, 0, len(items))
	var maxAbs uint64
	for _, it := range items {
		n, ok, err := asInt64(it)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", len(ints), err)
		}
		if !ok {
			ints = nil
			break
		}
		ints = append(ints, n)
		maxAbs = max(maxAbs, magnitude(n))
	}

	if ints != nil {
		switch {
		case maxAbs <= math.MaxInt8:
			out := make(tag.ByteArray, len(ints))
			for i, n := range ints {
				out[i] = int8(n)
			}

			return out, nil
		case maxAbs <= math.MaxInt32:
			out := make(tag.IntArray, len(ints))
			for i, n := range ints {
				out[i] = int32(n)
			}

			return out, nil
		default:
			return tag.LongArray(ints), nil
		}
	}

	l := &tag.List{ElemType: format.TagEnd, Items: make([]tag.Tag, 0, len(items))}
	for i, it := range items {
		child, err := Encode(it)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		if i == 0 {
			l.ElemType = child.Type()
		}
		l.Items = append(l.Items, child)
	}

	return l, nil
}

func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}

// asInt64 reports whether v is an integer, converting it when it fits.
// Booleans are not integers.
func asInt64(v any) (int64, bool, error) {
	switch x := v.(type) {
	case int:
		return int64(x), true, nil
	case int8:
		return int64(x), true, nil
	case int16:
		return int64(x), true, nil
	case int32:
		return int64(x), true, nil
	case int64:
		return x, true, nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int64(x), true, nil
	case uint16:
		return int64(x), true, nil
	case uint32:
		return int64(x), true, nil
	case uint64:
		return fromUint(x)
	case json.Number:
		if !isIntegerLiteral(string(x)) {
			return 0, false, nil
		}
		n, err := x.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: integer %s overflows int64", errs.ErrUnsupportedValue, x)
		}

		return n, true, nil
	}

	return 0, false, nil
}

func fromUint(u uint64) (int64, bool, error) {
	if u > math.MaxInt64 {
		return 0, false, fmt.Errorf("%w: integer %d overflows int64", errs.ErrUnsupportedValue, u)
	}

	return int64(u), true, nil
}
