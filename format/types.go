package format

type (
	TagType         uint8
	Endianness      uint8
	CompressionType uint8
)

const (
	TagEnd       TagType = 0x0 // TagEnd terminates a compound; it carries no name or payload.
	TagByte      TagType = 0x1 // TagByte is a signed 8-bit integer.
	TagShort     TagType = 0x2 // TagShort is a signed 16-bit integer.
	TagInt       TagType = 0x3 // TagInt is a signed 32-bit integer.
	TagLong      TagType = 0x4 // TagLong is a signed 64-bit integer.
	TagFloat     TagType = 0x5 // TagFloat is a 32-bit IEEE 754 float.
	TagDouble    TagType = 0x6 // TagDouble is a 64-bit IEEE 754 float.
	TagByteArray TagType = 0x7 // TagByteArray is a length-prefixed sequence of signed bytes.
	TagString    TagType = 0x8 // TagString is a u16 length-prefixed UTF-8 string.
	TagList      TagType = 0x9 // TagList is a homogeneous sequence of unnamed payloads.
	TagCompound  TagType = 0xA // TagCompound is a sequence of named tags ended by TagEnd.
	TagIntArray  TagType = 0xB // TagIntArray is a length-prefixed sequence of int32.
	TagLongArray TagType = 0xC // TagLongArray is a length-prefixed sequence of int64.

	BigEndian    Endianness = 0x1 // BigEndian is the Java edition byte order and the default.
	LittleEndian Endianness = 0x2 // LittleEndian is used by Bedrock edition files such as .mcstructure.

	CompressionNone CompressionType = 0x1 // CompressionNone represents raw tag data.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents a gzip member wrapping the tag data.
)

// MaxTagType is the largest type id defined by the format.
const MaxTagType = TagLongArray

// Valid reports whether t is one of the thirteen defined tag ids.
func (t TagType) Valid() bool {
	return t <= MaxTagType
}

func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

// Opposite returns the other byte order. Unknown values map to BigEndian.
func (e Endianness) Opposite() Endianness {
	if e == BigEndian {
		return LittleEndian
	}

	return BigEndian
}

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}
