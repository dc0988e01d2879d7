// Package endian provides the byte order engines used by the NBT reader and writer.
//
// NBT carries no byte order marker. Java edition files are big-endian, while
// Bedrock edition files (.mcstructure, level.dat) are little-endian, so every
// reader and writer in nbtkit is parameterized by an EndianEngine:
//
//	engine := endian.GetEngine(format.BigEndian)
//	reader := encoding.NewReader(data, engine)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"github.com/arloliu/nbtkit/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// The reader uses the ByteOrder half to decode fixed-width fields in place and
// the writer uses the AppendByteOrder half to grow its buffer without scratch
// allocations. binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the engine for the given byte order.
// Unknown values fall back to big-endian, the NBT default.
func GetEngine(order format.Endianness) EndianEngine {
	if order == format.LittleEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// Order reports which byte order the engine implements.
func Order(engine EndianEngine) format.Endianness {
	if engine == GetLittleEndianEngine() {
		return format.LittleEndian
	}

	return format.BigEndian
}
