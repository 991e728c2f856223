// Package element implements the tagged element codec (spec component C3):
// encoding and decoding of the nine primitive value kinds, plus the
// in-place skip operation used by random indexing.
//
// Every encoded element is `kind_byte || payload`; there is no delimiter
// between elements within a tuple, because every payload shape here is
// either fixed-width, a self-terminating varint, or (for Blob/Text) a
// 7-bit packed run that terminates at the first byte with a clear high
// bit.
package element

import (
	"fmt"
	"math"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/ordkv/tuplekey/errs"
	"github.com/ordkv/tuplekey/internal/iobuf"
	"github.com/ordkv/tuplekey/internal/varint"
)

// EncodeNull writes a Null element (kind byte only, no payload).
func EncodeNull(w *iobuf.Writer) {
	w.PutByte(byte(KindNull))
}

// EncodeBool writes a Bool element.
func EncodeBool(w *iobuf.Writer, v bool) {
	w.PutByte(byte(KindBool))
	if v {
		w.PutByte(1)
	} else {
		w.PutByte(0)
	}
}

// EncodeUint writes a non-negative Integer element.
func EncodeUint(w *iobuf.Writer, v uint64) {
	w.PutByte(byte(KindInteger))
	varint.Write(w, v, 0)
}

// EncodeInt writes a signed integer element, selecting KindInteger or
// KindNegInteger (XOR-masked absolute value) based on its sign.
func EncodeInt(w *iobuf.Writer, v int64) {
	if v >= 0 {
		EncodeUint(w, uint64(v))

		return
	}

	w.PutByte(byte(KindNegInteger))
	varint.Write(w, negMagnitude(v), 0xFF)
}

// EncodeBlob writes a Blob element.
func EncodeBlob(w *iobuf.Writer, b []byte) {
	w.PutByte(byte(KindBlob))
	PackBytes(w, b)
}

// EncodeText writes a Text element (UTF-8 bytes of s, 7-bit packed).
func EncodeText(w *iobuf.Writer, s string) {
	w.PutByte(byte(KindText))
	PackBytes(w, []byte(s))
}

// EncodeTime writes a Time or NegTime element for t, truncating to
// millisecond precision and truncating its UTC offset toward zero to a
// whole number of 15-minute units. Returns ErrOutOfRange if t's offset
// lies outside [-31, 32] quarter-hours.
func EncodeTime(w *iobuf.Writer, t time.Time) error {
	magnitude, negative, err := CompositeTime(t)
	if err != nil {
		return err
	}

	if negative {
		w.PutByte(byte(KindNegTime))
		varint.Write(w, magnitude, 0xFF)
	} else {
		w.PutByte(byte(KindTime))
		varint.Write(w, magnitude, 0)
	}

	return nil
}

// EncodeUUID writes a UUID element (16 raw bytes, no packing).
func EncodeUUID(w *iobuf.Writer, id uuid.UUID) {
	w.PutByte(byte(KindUUID))
	w.PutBytes(id.Bytes())
}

// Decode reads one element from r (which must be positioned at a kind
// byte) and returns its decoded Go value:
//
//	KindNull            -> nil
//	KindBool             -> bool
//	KindInteger           -> uint64
//	KindNegInteger        -> int64 (always < 0)
//	KindBlob              -> []byte (a fresh copy, nil when empty)
//	KindText              -> string
//	KindTime/KindNegTime  -> time.Time
//	KindUUID              -> uuid.UUID
func Decode(r *iobuf.Reader) (any, error) {
	kindByte, ok := r.Get()
	if !ok {
		return nil, fmt.Errorf("%w: missing kind byte", errs.ErrTruncated)
	}

	switch Kind(kindByte) {
	case KindNull:
		return nil, nil
	case KindBool:
		b, err := r.Take(1)
		if err != nil {
			return nil, fmt.Errorf("%w: bool payload", errs.ErrTruncated)
		}

		return b[0] != 0, nil
	case KindInteger:
		return varint.Read(r, 0)
	case KindNegInteger:
		mag, err := varint.Read(r, 0xFF)
		if err != nil {
			return nil, err
		}

		return negFromMagnitude(mag)
	case KindBlob:
		return cloneBytes(UnpackBytes(r)), nil
	case KindText:
		return string(UnpackBytes(r)), nil
	case KindTime:
		mag, err := varint.Read(r, 0)
		if err != nil {
			return nil, err
		}

		return DecomposeTime(mag, false), nil
	case KindNegTime:
		mag, err := varint.Read(r, 0xFF)
		if err != nil {
			return nil, err
		}

		return DecomposeTime(mag, true), nil
	case KindUUID:
		raw, err := r.Take(16)
		if err != nil {
			return nil, fmt.Errorf("%w: uuid payload", errs.ErrTruncated)
		}
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed uuid payload", errs.ErrCorrupt)
		}

		return id, nil
	case KindSep:
		return nil, fmt.Errorf("%w: unexpected separator", errs.ErrCorrupt)
	default:
		return nil, fmt.Errorf("%w: unknown kind byte %#x", errs.ErrCorrupt, kindByte)
	}
}

// Skip advances r past one element without materializing it. It reports
// sep=true (and does not return an error) when the element is the batch
// separator, signaling end of the current tuple to the caller.
func Skip(r *iobuf.Reader) (sep bool, err error) {
	kindByte, ok := r.Get()
	if !ok {
		return false, fmt.Errorf("%w: missing kind byte", errs.ErrTruncated)
	}

	switch Kind(kindByte) {
	case KindNull:
		return false, nil
	case KindBool:
		return false, r.Skip(1)
	case KindInteger:
		return false, skipVarint(r, 0)
	case KindNegInteger:
		return false, skipVarint(r, 0xFF)
	case KindTime:
		return false, skipVarint(r, 0)
	case KindNegTime:
		return false, skipVarint(r, 0xFF)
	case KindBlob, KindText:
		for {
			b, ok := r.Peek()
			if !ok || b&0x80 == 0 {
				break
			}
			_, _ = r.Get()
		}

		return false, nil
	case KindUUID:
		return false, r.Skip(16)
	case KindSep:
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown kind byte %#x", errs.ErrCorrupt, kindByte)
	}
}

// skipVarint reads just enough of a varint to determine its width, then
// skips the remainder, without reconstructing its value.
func skipVarint(r *iobuf.Reader, xor byte) error {
	first, ok := r.Get()
	if !ok {
		return fmt.Errorf("%w: missing varint first byte", errs.ErrTruncated)
	}

	n, err := varint.SkipWidth(first ^ xor)
	if err != nil {
		return err
	}

	return r.Skip(n - 1)
}

// negMagnitude returns the absolute value of a negative int64 as a uint64,
// correctly handling math.MinInt64 (whose naive negation overflows int64).
func negMagnitude(v int64) uint64 {
	return uint64(-(v + 1)) + 1
}

// negFromMagnitude is the inverse of negMagnitude for a magnitude known to
// fit in the negative int64 range.
func negFromMagnitude(mag uint64) (int64, error) {
	if mag > uint64(math.MaxInt64)+1 {
		return 0, fmt.Errorf("%w: negative integer magnitude %d exceeds int64 range", errs.ErrOutOfRange, mag)
	}

	return -int64(mag-1) - 1, nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
