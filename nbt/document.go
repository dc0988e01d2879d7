package nbt

import (
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/tag"
)

// Document is a decoded NBT file.
type Document struct {
	// Name is the root tag name. It is carried through decode and encode
	// unchanged and is not consulted by any emitter.
	Name string
	// Root is the root tag, usually a *tag.Compound.
	Root tag.Tag
	// Endianness is the byte order the document was read with or will be written with.
	Endianness format.Endianness
	// Compression is the outer framing that was detected or will be written.
	Compression format.CompressionType
}

// Compound returns the root as a compound.
func (d *Document) Compound() (*tag.Compound, bool) {
	c, ok := d.Root.(*tag.Compound)
	return c, ok
}

// emptyRoot reports whether the root is a compound with no members, the
// signal that a document was probably read with the wrong byte order.
func (d *Document) emptyRoot() bool {
	c, ok := d.Compound()
	return ok && c.Len() == 0
}
