// Package encoding provides the primitive byte cursor and writer the NBT tag
// codec is built on.
//
// Reader decodes fixed-width signed integers and IEEE floats from an
// in-memory buffer, parameterized by an endian.EndianEngine. Every read
// checks the remaining input first and reports errs.ErrTruncatedStream,
// wrapped with the offset and the number of bytes that were needed, when the
// buffer ends early.
//
// Writer is the inverse: it appends fixed-width values to a pooled buffer
// through the engine's AppendByteOrder half.
//
// # Text
//
// NBT strings are u16 length-prefixed. Java edition writes them as modified
// UTF-8 (NUL as C0 80, supplementary characters as CESU-8 surrogate pairs);
// Bedrock edition writes standard UTF-8. DecodeText accepts both, and
// EncodeModifiedUTF8 produces the Java form.
//
// # Example
//
//	w := encoding.NewWriter(endian.GetBigEndianEngine())
//	defer w.Release()
//	w.WriteInt32(42)
//	_ = w.WriteString("hello")
//
//	r := encoding.NewReader(w.Bytes(), endian.GetBigEndianEngine())
//	n, _ := r.ReadInt32()   // 42
//	s, _ := r.ReadString()  // "hello"
package encoding
