package jsontag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
	"github.com/tidwall/jsonc"

	"github.com/arloliu/nbtkit/errs"
)

// useSIMD selects the simdjson parser for object and array documents.
var useSIMD = simdjson.SupportedCPU()

// Parse decodes JSON or JSONC text into the value model accepted by Encode:
// Object, []any, string, bool, nil, int64 and float64.
//
// Integer literals outside the int64 range yield errs.ErrUnsupportedValue.
func Parse(data []byte) (any, error) {
	data = bytes.TrimSpace(jsonc.ToJSON(data))
	if len(data) == 0 {
		return nil, errors.New("jsontag: empty input")
	}

	if useSIMD && (data[0] == '{' || data[0] == '[') {
		return parseSIMD(data)
	}

	return parseStd(data)
}

func parseSIMD(data []byte) (any, error) {
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, fmt.Errorf("jsontag: %w", err)
	}

	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, errors.New("jsontag: json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, fmt.Errorf("jsontag: %w", err)
	}

	return valueFromIter(typ, root)
}

func valueFromIter(typ simdjson.Type, it *simdjson.Iter) (any, error) {
	switch typ {
	case simdjson.TypeNull:
		return nil, nil
	case simdjson.TypeBool:
		return it.Bool()
	case simdjson.TypeInt:
		return it.Int()
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d overflows int64", errs.ErrUnsupportedValue, v)
		}

		return int64(v), nil
	case simdjson.TypeFloat:
		v, flags, err := it.FloatFlags()
		if err != nil {
			return nil, err
		}
		if flags.Contains(simdjson.FloatOverflowedInteger) {
			return nil, fmt.Errorf("%w: integer %.0f overflows int64", errs.ErrUnsupportedValue, v)
		}

		return v, nil
	case simdjson.TypeString:
		return it.String()
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}

		out := Object{}
		var elemErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if elemErr != nil {
				return
			}
			v, err := valueFromIter(elem.Type(), &elem)
			if err != nil {
				elemErr = fmt.Errorf("member %q: %w", key, err)
				return
			}
			out = append(out, Member{Key: string(key), Value: v})
		}, nil)
		if err != nil {
			return nil, err
		}
		if elemErr != nil {
			return nil, elemErr
		}

		return out, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}

		out := []any{}
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			v, err := valueFromIter(t, &elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", len(out), err)
			}
			out = append(out, v)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("jsontag: unsupported json type: %v", typ)
	}
}

// parseStd walks encoding/json tokens so that object member order survives.
func parseStd(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseToken(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("jsontag: invalid character after top-level value")
	}

	return v, nil
}

func parseToken(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("jsontag: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			out := Object{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("jsontag: %w", err)
				}
				key, _ := kt.(string)
				val, err := parseToken(dec)
				if err != nil {
					return nil, fmt.Errorf("member %q: %w", key, err)
				}
				out = append(out, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("jsontag: %w", err)
			}

			return out, nil
		case '[':
			out := []any{}
			for dec.More() {
				val, err := parseToken(dec)
				if err != nil {
					return nil, fmt.Errorf("index %d: %w", len(out), err)
				}
				out = append(out, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("jsontag: %w", err)
			}

			return out, nil
		default:
			return nil, fmt.Errorf("jsontag: unexpected delimiter %q", v)
		}
	case json.Number:
		return parseNumber(v)
	default:
		// string, bool or nil
		return v, nil
	}
}

// parseNumber maps an integer literal to int64 and anything with a
// fraction or exponent to float64.
func parseNumber(n json.Number) (any, error) {
	if !isIntegerLiteral(string(n)) {
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", errs.ErrUnsupportedValue, n, err)
		}

		return f, nil
	}

	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: integer %s overflows int64", errs.ErrUnsupportedValue, n)
	}

	return i, nil
}

func isIntegerLiteral(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}
