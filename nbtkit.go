// Package nbtkit converts between binary NBT files and text.
//
// NBT is the tag-tree format Minecraft uses for level.dat, player data and
// structure files. nbtkit decodes it (gzip or raw, big- or little-endian),
// renders it as SNBT or typed JSON, and builds tag trees back from plain JSON
// by inferring the narrowest NBT type for every value.
//
// # Core Features
//
//   - Transparent gzip detection by magic bytes
//   - Byte order resolution by retry, for Bedrock little-endian files
//   - Standard and modified UTF-8 string payloads
//   - Compact and pretty SNBT and typed JSON from one shared tree walk
//   - Order-preserving, JSONC-tolerant JSON input with narrowest-type inference
//
// # Basic Usage
//
// Dumping a file:
//
//	doc, err := nbtkit.DecodeFile("level.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(nbtkit.ToSNBT(doc.Root, true))
//
// Authoring a file from JSON:
//
//	root, err := nbtkit.FromJSON([]byte(`{"Count": 1, "id": "minecraft:stone"}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = nbtkit.WriteFile("item.dat", "", root, true, format.BigEndian)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the nbt, text and jsontag packages directly.
package nbtkit

import (
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/jsontag"
	"github.com/arloliu/nbtkit/nbt"
	"github.com/arloliu/nbtkit/tag"
	"github.com/arloliu/nbtkit/text"
)

// DecodeFile reads an NBT file, inflating gzip and resolving the byte order.
//
// The returned Document holds the root tag, the root name, and the
// endianness and compression that were actually used.
//
// Available options:
//   - nbt.WithEndianness(format.LittleEndian) to change the first guess
//   - nbt.WithoutRetry() to disable the opposite-order retry
//   - nbt.WithMaxDepth(n) to change the nesting limit
//   - nbt.WithLogger(logger) for debug output
func DecodeFile(path string, opts ...nbt.Option) (*nbt.Document, error) {
	return nbt.DecodeFile(path, opts...)
}

// DecodeBytes is DecodeFile for an in-memory buffer.
func DecodeBytes(data []byte, opts ...nbt.Option) (*nbt.Document, error) {
	return nbt.Decode(data, opts...)
}

// ToSNBT renders t as SNBT, compact or indented.
func ToSNBT(t tag.Tag, pretty bool) string {
	return text.SNBT(t, pretty)
}

// ToTypedJSON renders t as indented typed JSON.
func ToTypedJSON(t tag.Tag) string {
	return text.TypedJSON(t, true)
}

// FromJSON parses JSON (comments and trailing commas allowed) and infers a tag tree.
func FromJSON(data []byte) (tag.Tag, error) {
	return jsontag.FromJSON(data)
}

// FromValue infers a tag tree from an already decoded JSON-shaped value.
// See jsontag.Encode for the accepted types.
func FromValue(v any) (tag.Tag, error) {
	return jsontag.Encode(v)
}

// WriteFile encodes t under the root name and writes it to path.
//
// Parameters:
//   - path: Destination, replaced if it exists
//   - name: Root tag name, usually empty
//   - t: Root tag, usually a *tag.Compound
//   - gzip: Wrap the output in gzip
//   - endianness: format.BigEndian for Java edition, format.LittleEndian for Bedrock
//   - opts: Extra encoder options such as nbt.WithModifiedUTF8()
func WriteFile(path, name string, t tag.Tag, gzip bool, endianness format.Endianness, opts ...nbt.Option) error {
	compression := format.CompressionNone
	if gzip {
		compression = format.CompressionGzip
	}

	return nbt.WriteFile(path, &nbt.Document{
		Name:        name,
		Root:        t,
		Endianness:  endianness,
		Compression: compression,
	}, opts...)
}

// Fingerprint returns a 64-bit structural hash of t. Trees that compare
// equal with tag.Equal share a fingerprint.
func Fingerprint(t tag.Tag) uint64 {
	return tag.Fingerprint(t)
}
