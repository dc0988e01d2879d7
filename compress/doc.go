// Package compress handles the outer framing of NBT files.
//
// NBT files are either raw tag data or a single gzip member wrapping it. The
// gzip magic bytes 1F 8B at offset 0 are the only signal; no other scheme is
// recognized. Detect classifies a buffer, Open classifies a stream, and
// CreateCodec returns the matching Codec:
//
//	codec, err := compress.CreateCodec(compress.Detect(data), "input")
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(data)
//
// Codecs are stateless values backed by pooled klauspost/compress gzip
// readers and writers, so they are safe for concurrent use.
package compress
