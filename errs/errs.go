// Package errs defines the sentinel error values returned by the tuplekey
// codec.
//
// Every error the codec can return wraps exactly one of these sentinels via
// fmt.Errorf's %w verb, so callers can distinguish failure modes with
// errors.Is regardless of the added context. The codec never retries an
// operation and never logs; every failure is surfaced to the caller.
package errs

import "errors"

var (
	// ErrTruncated indicates the input buffer ended mid-element or mid-varint.
	ErrTruncated = errors.New("tuplekey: truncated input")

	// ErrCorrupt indicates an unknown kind byte or an impossible varint width class.
	ErrCorrupt = errors.New("tuplekey: corrupt encoding")

	// ErrUnsupportedType indicates a value passed to Pack is not one of the
	// nine supported element variants.
	ErrUnsupportedType = errors.New("tuplekey: unsupported element type")

	// ErrOutOfRange indicates a timestamp UTC offset outside [-31*900, 32*900]
	// seconds, a decoded negative integer whose magnitude does not fit in
	// an int64, or a Key element index past either end of the key.
	ErrOutOfRange = errors.New("tuplekey: value out of range")

	// ErrOutOfMemory indicates the writer failed to grow its output buffer.
	ErrOutOfMemory = errors.New("tuplekey: out of memory")

	// ErrTypeMismatch indicates a Key was compared with < or > against a
	// value that is neither a Key nor a Tuple.
	ErrTypeMismatch = errors.New("tuplekey: type mismatch in comparison")
)
