package tuple

import (
	"fmt"

	"github.com/ordkv/tuplekey/internal/element"
	"github.com/ordkv/tuplekey/internal/iobuf"
)

// Pack encodes value -- a single element, a Tuple, or a Key -- prefixed
// verbatim by prefix. There is no delimiter between a tuple's elements:
// each element's kind tag and self-terminating payload make the boundary
// unambiguous on decode (spec section 9, "No inter-element delimiter").
func Pack(prefix []byte, value any) ([]byte, error) {
	if k, ok := value.(Key); ok {
		return k.ToRaw(prefix), nil
	}

	t, ok := value.(Tuple)
	if !ok {
		t = Tuple{value}
	}

	w := iobuf.GetWriter()
	defer iobuf.PutWriter(w)

	w.PutBytes(prefix)
	for _, elem := range t {
		if err := encodeElement(w, elem); err != nil {
			return nil, err
		}
	}

	return cloneFinish(w), nil
}

// MustPack panics if Pack returns an error. Useful for packing
// compile-time-known tuples (schema constants, test fixtures) where an
// UnsupportedType error would indicate a programming mistake, not bad
// input.
func MustPack(prefix []byte, value any) []byte {
	b, err := Pack(prefix, value)
	if err != nil {
		panic(err)
	}

	return b
}

// PackInt is a convenience wrapper for the common case of packing a single
// non-negative integer key, equivalent to Pack(prefix, v).
func PackInt(prefix []byte, v uint64) []byte {
	b, _ := Pack(prefix, v) // uint64 is always supported, err is always nil

	return b
}

// Unpack decodes a tuple from data, which must begin with prefix. It
// returns ok=false (not an error) if data does not start with prefix --
// callers use this to filter foreign keys out of a prefix scan (spec
// section 8, property 8).
func Unpack(prefix []byte, data []byte) (t Tuple, ok bool, err error) {
	if !bytesHasPrefix(data, prefix) {
		return nil, false, nil
	}

	r := iobuf.NewReader(data[len(prefix):])
	t, err = decodeTupleBody(r)
	if err != nil {
		return nil, true, err
	}

	return t, true, nil
}

// MustUnpack panics if Unpack returns an error, and returns (nil, false)
// unchanged when Unpack's prefix filter rejects data.
func MustUnpack(prefix []byte, data []byte) (Tuple, bool) {
	t, ok, err := Unpack(prefix, data)
	if err != nil {
		panic(err)
	}

	return t, ok
}

// decodeTupleBody decodes elements from r until end of buffer or a
// KindSep byte, which it consumes. It is shared by Unpack and Unpacks.
func decodeTupleBody(r *iobuf.Reader) (Tuple, error) {
	t := Tuple{}
	for !r.Done() {
		b, ok := r.Peek()
		if !ok {
			break
		}
		if element.Kind(b) == element.KindSep {
			_, _ = r.Get()

			break
		}

		v, err := element.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("decoding tuple element %d: %w", len(t), err)
		}
		t = append(t, v)
	}

	return t, nil
}

// bytesHasPrefix reports whether data starts with prefix, delegating to
// iobuf.Reader's own prefix check rather than duplicating it on raw
// slices.
func bytesHasPrefix(data, prefix []byte) bool {
	return iobuf.NewReader(data).StartsWith(prefix)
}

// cloneFinish detaches w's buffer, copies it (so the pooled Writer can be
// reused without aliasing the returned slice), and returns the copy.
func cloneFinish(w *iobuf.Writer) []byte {
	out := w.Finish()
	cp := make([]byte, len(out))
	copy(cp, out)

	return cp
}
