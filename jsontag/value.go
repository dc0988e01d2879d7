// Package jsontag converts plain JSON into NBT tag trees.
//
// JSON carries no NBT type information, so every value is mapped to the
// narrowest tag that holds it:
//
//	object            -> Compound (member order preserved)
//	true / false      -> Byte 1 / 0
//	integer           -> Byte, Short, Int or Long by range
//	fraction/exponent -> Float
//	string            -> String
//	null              -> empty String
//	all-integer array -> ByteArray, IntArray or LongArray by largest magnitude
//	[]                -> empty ByteArray
//	other array       -> List typed by its first element
//
// List element types are not checked: a mixed array becomes a List whose
// ElemType is the first element's type. The binary encoder rejects such a
// list with errs.ErrMixedList.
//
// Parse accepts JSONC (comments and trailing commas) and keeps object
// member order, which encoding/json's map decoding would lose.
package jsontag

// Member is one name/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object with its members in document order.
type Object []Member

// Get returns the value of the last member named key, which is the one a
// Compound built from the object keeps.
func (o Object) Get(key string) (any, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}

	return nil, false
}
