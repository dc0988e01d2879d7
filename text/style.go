// Package text renders tag trees as SNBT or typed JSON.
//
// Both notations share one tree walk. A Style supplies the parts that
// differ: how scalar and array leaves, strings and compound keys are
// written, and which separators join keys to values and items to each
// other in compact mode. Pretty mode is the same for every style: one
// member or element per line, two spaces deeper than the enclosing
// container, with the closing bracket at the container's own indent.
// Empty containers always render as {} and [].
//
//	text.SNBT(root, false)      // {id:"minecraft:stone",Count:1b}
//	text.TypedJSON(root, false) // {id: "minecraft:stone", Count: 1b}
package text

import (
	"io"

	"github.com/arloliu/nbtkit/internal/pool"
	"github.com/arloliu/nbtkit/tag"
)

// Style is the formatting policy applied by the tree walk.
type Style struct {
	// Leaf appends a scalar or array tag. It never sees String, List or Compound.
	Leaf func(dst []byte, t tag.Tag) []byte
	// String appends a String payload.
	String func(dst []byte, s string) []byte
	// Key appends a compound member name.
	Key func(dst []byte, name string) []byte
	// KeySep and ItemSep are used in compact mode. Pretty mode always uses
	// ": " between key and value and ",\n" between items.
	KeySep  string
	ItemSep string
}

const indentStep = 2

// Append appends the rendering of t to dst.
func (s *Style) Append(dst []byte, t tag.Tag, pretty bool) []byte {
	return s.walk(dst, t, pretty, 0)
}

// Render returns the rendering of t.
func (s *Style) Render(t tag.Tag, pretty bool) string {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	bb.B = s.Append(bb.B, t, pretty)

	return bb.String()
}

// Write renders t to w. The only possible error is the one w returns.
func (s *Style) Write(w io.Writer, t tag.Tag, pretty bool) error {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	bb.B = s.Append(bb.B, t, pretty)
	_, err := bb.WriteTo(w)

	return err
}

func (s *Style) walk(dst []byte, t tag.Tag, pretty bool, indent int) []byte {
	switch v := t.(type) {
	case *tag.Compound:
		if v.Len() == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{')
		i := 0
		for name, child := range v.All() {
			dst = s.open(dst, i, pretty, indent)
			dst = s.Key(dst, name)
			if pretty {
				dst = append(dst, ": "...)
			} else {
				dst = append(dst, s.KeySep...)
			}
			dst = s.walk(dst, child, pretty, indent+indentStep)
			i++
		}

		return append(s.close(dst, pretty, indent), '}')

	case *tag.List:
		if v.Len() == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, child := range v.Items {
			dst = s.open(dst, i, pretty, indent)
			dst = s.walk(dst, child, pretty, indent+indentStep)
		}

		return append(s.close(dst, pretty, indent), ']')

	case tag.String:
		return s.String(dst, string(v))

	default:
		return s.Leaf(dst, t)
	}
}

// open writes what precedes the i-th item of a container.
func (s *Style) open(dst []byte, i int, pretty bool, indent int) []byte {
	if i > 0 {
		if pretty {
			dst = append(dst, ',')
		} else {
			dst = append(dst, s.ItemSep...)
		}
	}
	if pretty {
		dst = append(dst, '\n')
		dst = appendIndent(dst, indent+indentStep)
	}

	return dst
}

// close writes what precedes the closing bracket of a non-empty container.
func (s *Style) close(dst []byte, pretty bool, indent int) []byte {
	if pretty {
		dst = append(dst, '\n')
		dst = appendIndent(dst, indent)
	}

	return dst
}

func appendIndent(dst []byte, n int) []byte {
	for range n {
		dst = append(dst, ' ')
	}

	return dst
}
