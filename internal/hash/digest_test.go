package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestDigest_Deterministic(t *testing.T) {
	feed := func() uint64 {
		h := NewDigest()
		h.Byte(10)
		h.String("Data")
		h.Uint32(7)
		h.Uint64(1 << 40)

		return h.Sum64()
	}

	require.Equal(t, feed(), feed())
}

func TestDigest_LengthPrefixPreventsAliasing(t *testing.T) {
	a := NewDigest()
	a.String("ab")
	a.String("c")

	b := NewDigest()
	b.String("a")
	b.String("bc")

	require.NotEqual(t, a.Sum64(), b.Sum64())
}

func TestDigest_Reset(t *testing.T) {
	h := NewDigest()
	empty := h.Sum64()

	h.Byte(1)
	require.NotEqual(t, empty, h.Sum64())

	h.Reset()
	require.Equal(t, empty, h.Sum64())
	require.Equal(t, xxhash.Sum64(nil), empty)
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkDigest(b *testing.B) {
	s := randString(20)
	h := NewDigest()
	for b.Loop() {
		h.Reset()
		h.String(s)
		h.Uint64(42)
		_ = h.Sum64()
	}
}
