package tag

import (
	"math"
	"slices"
	"sort"

	"github.com/arloliu/nbtkit/internal/hash"
)

// Equal reports whether a and b are structurally equal.
//
// Floats are compared by bit pattern, so NaN equals an identical NaN and 0
// differs from -0. Compound member order is ignored. Empty lists are equal
// regardless of their recorded element type, matching how the decoder treats
// a zero-length list.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch x := a.(type) {
	case End:
		return true
	case Byte, Short, Int, Long, String:
		return a == b
	case Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(x, b.(ByteArray))
	case IntArray:
		return slices.Equal(x, b.(IntArray))
	case LongArray:
		return slices.Equal(x, b.(LongArray))
	case *List:
		return equalList(x, b.(*List))
	case *Compound:
		return equalCompound(x, b.(*Compound))
	}

	return false
}

func equalList(a, b *List) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() > 0 && a.ElemType != b.ElemType {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}

	return true
}

func equalCompound(a, b *Compound) bool {
	if a.Len() != b.Len() {
		return false
	}
	for name, av := range a.All() {
		bv, ok := b.Get(name)
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}

// Fingerprint returns an xxHash64 digest of t's structure.
//
// Trees that are Equal have the same fingerprint: compound members are
// hashed in name order and empty lists omit their element type.
func Fingerprint(t Tag) uint64 {
	h := hash.NewDigest()
	fingerprint(h, t)

	return h.Sum64()
}

func fingerprint(h *hash.Digest, t Tag) {
	if t == nil {
		h.Byte(0xFF)
		return
	}

	h.Byte(byte(t.Type()))
	switch x := t.(type) {
	case End:
	case Byte:
		h.Byte(byte(x))
	case Short:
		h.Uint32(uint32(x)) //nolint:gosec
	case Int:
		h.Uint32(uint32(x)) //nolint:gosec
	case Long:
		h.Uint64(uint64(x)) //nolint:gosec
	case Float:
		h.Uint32(math.Float32bits(float32(x)))
	case Double:
		h.Uint64(math.Float64bits(float64(x)))
	case String:
		h.String(string(x))
	case ByteArray:
		h.Uint32(uint32(len(x))) //nolint:gosec
		for _, v := range x {
			h.Byte(byte(v))
		}
	case IntArray:
		h.Uint32(uint32(len(x))) //nolint:gosec
		for _, v := range x {
			h.Uint32(uint32(v)) //nolint:gosec
		}
	case LongArray:
		h.Uint32(uint32(len(x))) //nolint:gosec
		for _, v := range x {
			h.Uint64(uint64(v)) //nolint:gosec
		}
	case *List:
		h.Uint32(uint32(x.Len())) //nolint:gosec
		if x.Len() > 0 {
			h.Byte(byte(x.ElemType))
		}
		for _, it := range x.Items {
			fingerprint(h, it)
		}
	case *Compound:
		names := x.Keys()
		sort.Strings(names)
		h.Uint32(uint32(len(names))) //nolint:gosec
		for _, name := range names {
			v, _ := x.Get(name)
			h.String(name)
			fingerprint(h, v)
		}
	}
}
