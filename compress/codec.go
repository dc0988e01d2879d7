package compress

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/nbtkit/format"
)

// GzipMagic is the two-byte signature every gzip member starts with.
var GzipMagic = [2]byte{0x1F, 0x8B}

// Compressor compresses a complete encoded document.
//
// Memory management:
//   - Returned slice is owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete encoded document.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Detect reports CompressionGzip when data starts with GzipMagic and
// CompressionNone otherwise.
func Detect(data []byte) format.CompressionType {
	if len(data) >= 2 && data[0] == GzipMagic[0] && data[1] == GzipMagic[1] {
		return format.CompressionGzip
	}

	return format.CompressionNone
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None or Gzip)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

// ReadAll reads r to the end, inflating it on the fly when it is gzip framed.
//
// Only the first two bytes are buffered before deciding, so large gzip
// files are never held in memory in compressed form.
//
// Returns:
//   - []byte: Raw tag data
//   - format.CompressionType: The framing that was detected
//   - error: Read or inflate failure
func ReadAll(r io.Reader) ([]byte, format.CompressionType, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, format.CompressionNone, err
	}

	if Detect(head) != format.CompressionGzip {
		data, err := io.ReadAll(br)
		return data, format.CompressionNone, err
	}

	zr, err := getGzipReader(br)
	if err != nil {
		return nil, format.CompressionGzip, fmt.Errorf("gzip header: %w", err)
	}
	defer putGzipReader(zr)

	var out bytes.Buffer
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, format.CompressionGzip, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return out.Bytes(), format.CompressionGzip, nil
}
