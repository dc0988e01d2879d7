package nbt

import (
	"fmt"
	"os"

	"github.com/arloliu/nbtkit/compress"
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/internal/options"
)

// DecodeFile reads and decodes the NBT file at path.
//
// The file is opened once and closed before returning on every path; the
// byte order retry runs on the in-memory copy.
func DecodeFile(path string, opts ...Option) (*Document, error) {
	cfg, err := options.Build(defaultConfig, opts...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, compression, err := compress.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.logger.Debug("read file", "path", path, "compression", compression, "bytes", len(raw))

	doc, err := decodeRaw(raw, compression, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Marshal encodes doc with its own Endianness and Compression; zero values
// mean big-endian and no compression. Options other than the byte order
// still apply.
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	order, compression := doc.Endianness, doc.Compression
	if order == 0 {
		order = format.BigEndian
	}
	if compression == 0 {
		compression = format.CompressionNone
	}

	enc, err := NewEncoder(append(opts[:len(opts):len(opts)], WithEndianness(order))...)
	if err != nil {
		return nil, err
	}

	data, err := enc.Encode(doc.Name, doc.Root)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(compression, "output")
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// WriteFile encodes doc and writes it to path, replacing any existing file.
func WriteFile(path string, doc *Document, opts ...Option) error {
	cfg, err := options.Build(defaultConfig, opts...)
	if err != nil {
		return err
	}

	data, err := Marshal(doc, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return err
	}
	cfg.logger.Debug("wrote file", "path", path, "endianness", doc.Endianness,
		"compression", doc.Compression, "bytes", len(data))

	return nil
}
