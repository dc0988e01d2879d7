// Package tag defines the in-memory NBT tag tree.
//
// Each of the thirteen NBT types has one Go type implementing Tag. Scalars and
// arrays are plain named types, so literals read naturally:
//
//	root := tag.NewCompound()
//	root.Set("Count", tag.Byte(1))
//	root.Set("id", tag.String("minecraft:stone"))
//	root.Set("Pos", tag.NewList(format.TagDouble, tag.Double(0.5), tag.Double(64), tag.Double(0.5)))
//
// Trees are built once by a decoder or by the JSON encoder and are treated as
// immutable afterwards; the text emitters only read them. Nothing in this
// package synchronizes access.
package tag

import "github.com/arloliu/nbtkit/format"

// Tag is one node of an NBT tree.
type Tag interface {
	// Type returns the NBT type id of the node.
	Type() format.TagType
}

// End terminates a Compound on the wire. It only appears in memory as the
// result of decoding a document whose root id is End.
type End struct{}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

func (End) Type() format.TagType       { return format.TagEnd }
func (Byte) Type() format.TagType      { return format.TagByte }
func (Short) Type() format.TagType     { return format.TagShort }
func (Int) Type() format.TagType       { return format.TagInt }
func (Long) Type() format.TagType      { return format.TagLong }
func (Float) Type() format.TagType     { return format.TagFloat }
func (Double) Type() format.TagType    { return format.TagDouble }
func (ByteArray) Type() format.TagType { return format.TagByteArray }
func (String) Type() format.TagType    { return format.TagString }
func (IntArray) Type() format.TagType  { return format.TagIntArray }
func (LongArray) Type() format.TagType { return format.TagLongArray }

// List is an ordered sequence of tags sharing one element type.
//
// An empty list still records ElemType; by convention it is TagEnd. The
// binary encoder rejects lists whose items do not all match ElemType, while
// the JSON encoder builds them unchecked.
type List struct {
	ElemType format.TagType
	Items    []Tag
}

// NewList creates a list of the given element type.
func NewList(elem format.TagType, items ...Tag) *List {
	return &List{ElemType: elem, Items: items}
}

func (*List) Type() format.TagType { return format.TagList }

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// Append adds t to the end of the list. Appending to an empty list whose
// element type is End adopts the type of t.
func (l *List) Append(t Tag) {
	if len(l.Items) == 0 && l.ElemType == format.TagEnd {
		l.ElemType = t.Type()
	}
	l.Items = append(l.Items, t)
}

// Homogeneous reports whether every item has type ElemType.
func (l *List) Homogeneous() bool {
	for _, it := range l.Items {
		if it == nil || it.Type() != l.ElemType {
			return false
		}
	}

	return true
}
