package compress

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/nbtkit/format"
)

func sampleDocument() []byte {
	// TAG_Compound "hello world" { TAG_String "name": "Bananrama" }
	return []byte{
		0x0A, 0x00, 0x0B, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
		0x00,
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want format.CompressionType
	}{
		{"empty", nil, format.CompressionNone},
		{"single magic byte", []byte{0x1F}, format.CompressionNone},
		{"gzip magic", []byte{0x1F, 0x8B, 0x08}, format.CompressionGzip},
		{"raw compound", sampleDocument(), format.CompressionNone},
		{"reversed magic", []byte{0x8B, 0x1F}, format.CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.data))
		})
	}
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionNone, "test")
	require.NoError(t, err)
	require.IsType(t, NoOpCompressor{}, codec)

	codec, err = CreateCodec(format.CompressionGzip, "test")
	require.NoError(t, err)
	require.IsType(t, GzipCompressor{}, codec)

	_, err = CreateCodec(format.CompressionType(99), "test")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid test compression")
}

func TestNoOpCompressor(t *testing.T) {
	c := NewNoOpCompressor()
	data := sampleDocument()

	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	back, err := c.Decompress(out)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestGzipCompressor_RoundTrip(t *testing.T) {
	c := NewGzipCompressor()
	data := bytes.Repeat(sampleDocument(), 50)

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionGzip, Detect(compressed))
	require.Less(t, len(compressed), len(data))

	back, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, back)

	// pooled writers and readers must not leak state between calls
	again, err := c.Compress(sampleDocument())
	require.NoError(t, err)
	back, err = c.Decompress(again)
	require.NoError(t, err)
	require.Equal(t, sampleDocument(), back)
}

func TestGzipCompressor_Levels(t *testing.T) {
	data := bytes.Repeat(sampleDocument(), 20)

	for _, level := range []int{gzip.BestSpeed, gzip.BestCompression} {
		c := NewGzipCompressorLevel(level)
		compressed, err := c.Compress(data)
		require.NoError(t, err)

		back, err := c.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, back)
	}

	_, err := NewGzipCompressorLevel(42).Compress(data)
	require.Error(t, err)
}

func TestGzipCompressor_Empty(t *testing.T) {
	c := NewGzipCompressor()

	compressed, err := c.Compress(nil)
	require.NoError(t, err)

	back, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, back)
}

func TestGzipCompressor_Corrupt(t *testing.T) {
	c := NewGzipCompressor()

	_, err := c.Decompress(sampleDocument())
	require.Error(t, err)

	compressed, err := c.Compress(sampleDocument())
	require.NoError(t, err)
	_, err = c.Decompress(compressed[:len(compressed)-6])
	require.Error(t, err)
}

func TestReadAll(t *testing.T) {
	raw := sampleDocument()
	gz, err := NewGzipCompressor().Compress(raw)
	require.NoError(t, err)

	data, kind, err := ReadAll(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, kind)
	require.Equal(t, raw, data)

	data, kind, err = ReadAll(bytes.NewReader(gz))
	require.NoError(t, err)
	require.Equal(t, format.CompressionGzip, kind)
	require.Equal(t, raw, data)

	data, kind, err = ReadAll(bytes.NewReader([]byte{0x0A}))
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, kind)
	require.Equal(t, []byte{0x0A}, data)
}

func BenchmarkGzipCompressor(b *testing.B) {
	c := NewGzipCompressor()
	data := bytes.Repeat(sampleDocument(), 200)

	b.Run("Compress", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for b.Loop() {
			_, _ = c.Compress(data)
		}
	})

	compressed, _ := c.Compress(data)
	b.Run("Decompress", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for b.Loop() {
			_, _ = c.Decompress(compressed)
		}
	})
}
