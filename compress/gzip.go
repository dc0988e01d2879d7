package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor wraps tag data in a single gzip member, the framing used
// by level.dat, player data and structure files.
type GzipCompressor struct {
	level int
}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a gzip codec at the default compression level.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{level: gzip.DefaultCompression}
}

// NewGzipCompressorLevel creates a gzip codec at the given level
// (gzip.HuffmanOnly through gzip.BestCompression).
func NewGzipCompressorLevel(level int) GzipCompressor {
	return GzipCompressor{level: level}
}

// gzipWriterPool pools writers at the default level; other levels allocate.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool sync.Pool

func getGzipReader(r io.Reader) (*gzip.Reader, error) {
	if zr, ok := gzipReaderPool.Get().(*gzip.Reader); ok {
		if err := zr.Reset(r); err != nil {
			gzipReaderPool.Put(zr)
			return nil, err
		}

		return zr, nil
	}

	return gzip.NewReader(r)
}

func putGzipReader(zr *gzip.Reader) {
	_ = zr.Close()
	gzipReaderPool.Put(zr)
}

// Compress gzips data.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(data)/2 + 32)

	var zw *gzip.Writer
	if c.level == gzip.DefaultCompression {
		zw = gzipWriterPool.Get().(*gzip.Writer) //nolint:forcetypeassert
		zw.Reset(&out)
		defer gzipWriterPool.Put(zw)
	} else {
		var err error
		zw, err = gzip.NewWriterLevel(&out, c.level)
		if err != nil {
			return nil, fmt.Errorf("gzip writer: %w", err)
		}
	}

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress inflates a gzip member.
//
// Returns an error if data is not gzip framed or is corrupted.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	zr, err := getGzipReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}
	defer putGzipReader(zr)

	var out bytes.Buffer
	out.Grow(len(data) * 4)
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return out.Bytes(), nil
}
