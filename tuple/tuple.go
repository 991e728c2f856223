// Package tuple implements the order-preserving tuple key codec: encoding
// heterogeneous tuples of primitive values into byte strings whose memcmp
// order reproduces the tuples' natural ordering (spec components C4, C5,
// C6, C7). It is the public facade over internal/element, internal/varint,
// and internal/iobuf.
package tuple

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

// Tuple is an ordered sequence of elements. Each element must be one of:
//
//	nil                                        -- Null
//	bool                                        -- Bool
//	int, int8, int16, int32, int64               -- Integer or NegInteger, by sign
//	uint, uint8, uint16, uint32, uint64            -- Integer (always non-negative)
//	[]byte                                        -- Blob
//	string                                        -- Text
//	time.Time                                     -- Time or NegTime, by sign of the epoch
//	uuid.UUID                                     -- Uuid
//
// Any other element type causes Pack/Packs to return ErrUnsupportedType.
type Tuple []any

// UUID is the 16-byte element type; it is an alias of uuid.UUID so callers
// can construct values with uuid.NewV4(), uuid.FromString(), etc.
type UUID = uuid.UUID

// Equal reports whether two tuples have the same length and
// element-wise-equal values. Time elements compare equal when they
// represent the same millisecond instant and UTC offset; this mirrors the
// precision the wire format actually stores (spec section 8, property 1).
func (t Tuple) Equal(other Tuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if !elementsEqual(t[i], other[i]) {
			return false
		}
	}

	return true
}

func elementsEqual(a, b any) bool {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return false
		}
		_, aOff := av.Zone()
		_, bOff := bv.Zone()

		return av.UnixMilli() == bv.UnixMilli() && aOff == bOff
	case []byte:
		bv, ok := b.([]byte)
		if !ok {
			return false
		}
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}

		return true
	default:
		return normalizeInt(a) == normalizeInt(b)
	}
}

// normalizeInt widens any supported integer-ish element to a comparable
// form so that e.g. int(5) and int64(5) compare equal; non-integer,
// non-time, non-blob values fall through to plain == on the any.
func normalizeInt(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	default:
		return v
	}
}
