package text

import (
	"io"
	"unicode/utf8"

	"github.com/arloliu/nbtkit/tag"
)

// TypedJSONStyle renders JSON-shaped text that keeps NBT suffixes.
//
// Int and Double are plain JSON numbers; Byte, Short, Long and Float keep
// their suffix as a bare token, so the output is not strict JSON. Strings
// follow JSON escaping and keys are bare when they are plain identifiers.
var TypedJSONStyle = &Style{
	Leaf:    appendSNBTLeaf,
	String:  appendJSONString,
	Key:     appendTypedJSONKey,
	KeySep:  ": ",
	ItemSep: ", ",
}

// TypedJSON renders t as typed JSON.
func TypedJSON(t tag.Tag, pretty bool) string {
	return TypedJSONStyle.Render(t, pretty)
}

// WriteTypedJSON writes t to w as typed JSON.
func WriteTypedJSON(w io.Writer, t tag.Tag, pretty bool) error {
	return TypedJSONStyle.Write(w, t, pretty)
}

func appendTypedJSONKey(dst []byte, name string) []byte {
	if isIdent(name) {
		return append(dst, name...)
	}

	return appendJSONString(dst, name)
}

const hexDigits = "0123456789abcdef"

// appendJSONString writes s as a JSON string literal. Non-ASCII text is
// kept as-is; invalid UTF-8 bytes become U+FFFD.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				dst = append(dst, "\uFFFD"...)
			} else {
				dst = append(dst, s[i:i+size]...)
			}
			i += size

			continue
		}

		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, `\n`...)
		case '\r':
			dst = append(dst, `\r`...)
		case '\t':
			dst = append(dst, `\t`...)
		case '\b':
			dst = append(dst, `\b`...)
		case '\f':
			dst = append(dst, `\f`...)
		default:
			if c < 0x20 {
				dst = append(dst, `\u00`...)
				dst = append(dst, hexDigits[c>>4], hexDigits[c&0xF])
			} else {
				dst = append(dst, c)
			}
		}
		i++
	}

	return append(dst, '"')
}
