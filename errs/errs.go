// Package errs defines the sentinel errors returned by nbtkit packages.
//
// Errors are returned wrapped with context (offset, tag path, file name), so
// callers should test for a kind with errors.Is rather than by equality:
//
//	doc, err := nbt.Decode(data)
//	if errors.Is(err, errs.ErrTruncatedStream) {
//	    // input ended mid-value
//	}
package errs

import "errors"

// Decode errors.
var (
	// ErrTruncatedStream indicates the input ended before a value was fully read.
	ErrTruncatedStream = errors.New("nbt: truncated stream")
	// ErrUnknownTagType indicates a type id outside the range 0-12.
	ErrUnknownTagType = errors.New("nbt: unknown tag type")
	// ErrInvalidText indicates a name or string payload that is neither UTF-8 nor modified UTF-8.
	ErrInvalidText = errors.New("nbt: invalid text")
	// ErrMalformedLength indicates a negative array or list length.
	ErrMalformedLength = errors.New("nbt: malformed length")
	// ErrDepthExceeded indicates compounds and lists nested deeper than MaxDepth.
	ErrDepthExceeded = errors.New("nbt: nesting depth exceeded")
)

// Encode errors.
var (
	// ErrUnsupportedValue indicates a JSON-side value with no NBT representation.
	ErrUnsupportedValue = errors.New("nbt: unsupported value")
	// ErrStringTooLong indicates a name or string longer than 65535 encoded bytes.
	ErrStringTooLong = errors.New("nbt: string too long")
	// ErrMixedList indicates a list item whose type differs from the list element type.
	ErrMixedList = errors.New("nbt: mixed list element types")
	// ErrNilTag indicates a nil tag where a value is required.
	ErrNilTag = errors.New("nbt: nil tag")
)

// IsStructural reports whether err is a decode failure that depends on the
// assumed byte order and is therefore worth retrying with the opposite one.
func IsStructural(err error) bool {
	return errors.Is(err, ErrTruncatedStream) ||
		errors.Is(err, ErrUnknownTagType) ||
		errors.Is(err, ErrMalformedLength) ||
		errors.Is(err, ErrDepthExceeded)
}
