package text

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// appendDecimal appends the shortest decimal that reads back as v at the
// given bit size. Positional notation is used for exponents in [-4, 16)
// and scientific notation otherwise, so 1e16 and 1.5e-05 stay compact while
// ordinary coordinates print in full. Non-finite values are written as
// NaN, Infinity and -Infinity.
//
// keepPoint appends ".0" to integral positional output. Without it an
// integral value is always written positionally, however large.
func appendDecimal(dst []byte, v float64, bitSize int, keepPoint bool) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(v, -1):
		return append(dst, "-Infinity"...)
	}

	sci := strconv.FormatFloat(v, 'e', -1, bitSize)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	integral := v == math.Trunc(v)
	if (exp < -4 || exp >= 16) && (keepPoint || !integral) {
		return append(dst, sci...)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', -1, bitSize)
	if keepPoint && bytes.IndexByte(dst[start:], '.') < 0 {
		dst = append(dst, ".0"...)
	}

	return dst
}

func appendFloat32(dst []byte, v float32) []byte {
	return appendDecimal(dst, float64(v), 32, false)
}

func appendFloat64(dst []byte, v float64) []byte {
	return appendDecimal(dst, v, 64, true)
}

// appendArray writes the bracketed array notation shared by both styles,
// for example [B;1b,2b] or [I;] for an empty IntArray.
func appendArray[T int8 | int32 | int64](dst []byte, prefix byte, suffix string, v []T) []byte {
	dst = append(dst, '[', prefix, ';')
	for i, x := range v {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(x), 10)
		dst = append(dst, suffix...)
	}

	return append(dst, ']')
}

// isIdent reports whether a compound key can be written without quotes.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '-', c == '.', c == '+':
		default:
			return false
		}
	}

	return true
}
