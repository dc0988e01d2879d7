package nbt

import (
	"fmt"

	"github.com/arloliu/nbtkit/compress"
	"github.com/arloliu/nbtkit/encoding"
	"github.com/arloliu/nbtkit/endian"
	"github.com/arloliu/nbtkit/errs"
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/internal/options"
)

// Attempt decodes the input assuming the given byte order.
type Attempt func(order format.Endianness) (*Document, error)

// Resolve applies the byte order retry policy around attempt.
//
// The first attempt uses assumed. The opposite order is tried at most once:
//   - when the first attempt yields an empty root compound, the retry result
//     is kept only if it succeeds with a non-empty root; otherwise the empty
//     first result stands
//   - when the first attempt fails with a structural error (see
//     errs.IsStructural), the retry result is returned if it succeeds;
//     otherwise both errors are returned wrapped together
//
// Any other failure, including ErrInvalidText, is returned without a retry.
func Resolve(assumed format.Endianness, attempt Attempt) (*Document, error) {
	opposite := assumed.Opposite()

	doc, err := attempt(assumed)
	if err == nil {
		if !doc.emptyRoot() {
			return doc, nil
		}

		alt, altErr := attempt(opposite)
		if altErr == nil && !alt.emptyRoot() {
			return alt, nil
		}

		return doc, nil
	}

	if !errs.IsStructural(err) {
		return nil, err
	}

	alt, altErr := attempt(opposite)
	if altErr != nil {
		return nil, fmt.Errorf("as %s-endian: %w; as %s-endian: %w", assumed, err, opposite, altErr)
	}

	return alt, nil
}

// Decode decodes an in-memory NBT document, inflating gzip framing first.
//
// Without WithoutRetry the byte order is resolved with Resolve; the
// returned Document records which order succeeded.
func Decode(data []byte, opts ...Option) (*Document, error) {
	cfg, err := options.Build(defaultConfig, opts...)
	if err != nil {
		return nil, err
	}

	compression := compress.Detect(data)
	codec, err := compress.CreateCodec(compression, "input")
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return decodeRaw(raw, compression, cfg)
}

func decodeRaw(raw []byte, compression format.CompressionType, cfg *config) (*Document, error) {
	attempt := func(order format.Endianness) (*Document, error) {
		d := NewDecoder(encoding.NewReader(raw, endian.GetEngine(order)))
		d.MaxDepth = cfg.maxDepth

		name, root, err := d.Decode()
		if err != nil {
			cfg.logger.Debug("decode attempt failed", "endianness", order, "error", err)
			return nil, err
		}

		return &Document{
			Name:        name,
			Root:        root,
			Endianness:  d.Endianness(),
			Compression: compression,
		}, nil
	}

	if !cfg.retry {
		return attempt(cfg.endianness)
	}

	doc, err := Resolve(cfg.endianness, attempt)
	if err != nil {
		return nil, err
	}
	if doc.Endianness != cfg.endianness {
		cfg.logger.Debug("byte order resolved by retry", "assumed", cfg.endianness, "used", doc.Endianness)
	}

	return doc, nil
}
