package text

import (
	"io"
	"strconv"

	"github.com/arloliu/nbtkit/tag"
)

// SNBTStyle renders canonical SNBT: typed suffixes on every number except
// Int and Double, compact containers without spaces.
var SNBTStyle = &Style{
	Leaf:    appendSNBTLeaf,
	String:  appendSNBTString,
	Key:     appendSNBTKey,
	KeySep:  ":",
	ItemSep: ",",
}

// SNBT renders t as SNBT.
func SNBT(t tag.Tag, pretty bool) string {
	return SNBTStyle.Render(t, pretty)
}

// WriteSNBT writes t to w as SNBT.
func WriteSNBT(w io.Writer, t tag.Tag, pretty bool) error {
	return SNBTStyle.Write(w, t, pretty)
}

func appendSNBTLeaf(dst []byte, t tag.Tag) []byte {
	switch v := t.(type) {
	case tag.Byte:
		return append(strconv.AppendInt(dst, int64(v), 10), 'b')
	case tag.Short:
		return append(strconv.AppendInt(dst, int64(v), 10), 's')
	case tag.Int:
		return strconv.AppendInt(dst, int64(v), 10)
	case tag.Long:
		return append(strconv.AppendInt(dst, int64(v), 10), 'L')
	case tag.Float:
		return append(appendFloat32(dst, float32(v)), 'f')
	case tag.Double:
		return appendFloat64(dst, float64(v))
	case tag.ByteArray:
		return appendArray(dst, 'B', "b", v)
	case tag.IntArray:
		return appendArray(dst, 'I', "", v)
	case tag.LongArray:
		return appendArray(dst, 'L', "L", v)
	}

	return dst
}

// appendSNBTString quotes s, escaping only backslash and double quote.
func appendSNBTString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '\\' || c == '"' {
			dst = append(dst, '\\')
		}
		dst = append(dst, s[i])
	}

	return append(dst, '"')
}

func appendSNBTKey(dst []byte, name string) []byte {
	if isIdent(name) {
		return append(dst, name...)
	}

	return appendSNBTString(dst, name)
}
