package encoding

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/nbtkit/errs"
)

// DecodeText converts a string payload to a Go string.
//
// Standard UTF-8 is returned as-is. Otherwise the payload is decoded as
// modified UTF-8, which differs from UTF-8 in two places: NUL is encoded as
// the overlong pair C0 80 and supplementary characters are encoded as two
// three-byte surrogates. Anything that is neither yields errs.ErrInvalidText.
func DecodeText(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			out = append(out, c)
			i++

		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || !isCont(b[i+1]) {
				return "", invalidText(i)
			}
			r := rune(c&0x1F)<<6 | rune(b[i+1]&0x3F)
			if r != 0 && r < 0x80 {
				return "", invalidText(i)
			}
			out = utf8.AppendRune(out, r)
			i += 2

		case c&0xF0 == 0xE0:
			r, ok := decode3(b, i)
			if !ok {
				return "", invalidText(i)
			}
			i += 3
			if utf16.IsSurrogate(r) {
				if r >= 0xDC00 {
					return "", invalidText(i - 3)
				}
				lo, ok := decode3(b, i)
				if !ok || lo < 0xDC00 || lo > 0xDFFF {
					return "", invalidText(i - 3)
				}
				r = utf16.DecodeRune(r, lo)
				i += 3
			}
			out = utf8.AppendRune(out, r)

		default:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", invalidText(i)
			}
			out = append(out, b[i:i+size]...)
			i += size
		}
	}

	return string(out), nil
}

// EncodeModifiedUTF8 returns s in modified UTF-8.
func EncodeModifiedUTF8(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xC0, 0x80)
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			out = append3(out, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			out = append3(out, hi)
			out = append3(out, lo)
		}
	}

	return out
}

func isCont(c byte) bool {
	return c&0xC0 == 0x80
}

func decode3(b []byte, i int) (rune, bool) {
	if i+2 >= len(b) || b[i]&0xF0 != 0xE0 || !isCont(b[i+1]) || !isCont(b[i+2]) {
		return 0, false
	}
	r := rune(b[i]&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
	if r < 0x800 {
		return 0, false
	}

	return r, true
}

func append3(out []byte, r rune) []byte {
	return append(out, 0xE0|byte(r>>12), 0x80|byte((r>>6)&0x3F), 0x80|byte(r&0x3F))
}

func invalidText(at int) error {
	return fmt.Errorf("%w: bad byte sequence at index %d", errs.ErrInvalidText, at)
}
