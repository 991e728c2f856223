package tuple

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/ordkv/tuplekey/errs"
	"github.com/ordkv/tuplekey/internal/element"
	"github.com/ordkv/tuplekey/internal/iobuf"
)

// hashUnset is the sentinel meaning "hash not yet computed". It matches
// the spec's choice of -1 as the reserved "uncomputed" value for Key
// hashes; any key whose real xxhash happens to collide with it is
// remapped to hashComputedSentinelCollision.
const (
	hashUnset                     = -1
	hashComputedSentinelCollision = -2
)

// Key is an immutable, hashable, comparable, iterable byte container
// representing zero or more encoded elements, optionally followed by
// KindSep and more elements (batch form). A Key never stores the prefix
// it was decoded with or will be serialized with -- ToRaw/KeyFromRaw
// handle that translation at the boundary.
//
// A Key's data either aliases a caller-owned slice (constructed via
// KeyFromRaw with a borrowed buffer) or owns its own backing array.
// Either way, it is immutable after construction: nothing in this package
// mutates a Key's bytes.
type Key struct {
	data []byte
	hash int64
}

// NewKey builds a Key from a tuple of elements, applying Pack with an
// empty prefix.
func NewKey(elems ...any) (Key, error) {
	return NewKeyFromTuple(Tuple(elems))
}

// NewKeyFromTuple builds a Key from t, applying Pack with an empty prefix.
func NewKeyFromTuple(t Tuple) (Key, error) {
	b, err := Pack(nil, t)
	if err != nil {
		return Key{}, err
	}

	return Key{data: b, hash: hashUnset}, nil
}

// NewKeyFromElement builds a Key from a single element.
func NewKeyFromElement(v any) (Key, error) {
	b, err := Pack(nil, v)
	if err != nil {
		return Key{}, err
	}

	return Key{data: b, hash: hashUnset}, nil
}

// KeyFromRaw builds a Key from a (prefix, bytes) pair, where bytes is the
// full physical storage key (prefix included). It reports ok=false
// without an error if bytes does not start with prefix -- the same
// not-an-error contract as Unpack. The Key does not copy raw; callers
// that need the Key to outlive raw's backing array should pass a copy.
func KeyFromRaw(prefix, raw []byte) (k Key, ok bool) {
	if !bytesHasPrefix(raw, prefix) {
		return Key{}, false
	}

	return Key{data: raw[len(prefix):], hash: hashUnset}, true
}

// KeyFromHex decodes a lowercase-or-uppercase hex string into a Key.
func KeyFromHex(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: invalid hex key: %v", errs.ErrCorrupt, err)
	}

	return Key{data: b, hash: hashUnset}, nil
}

// ToRaw prepends prefix to the Key's bytes, producing the physical
// storage key.
func (k Key) ToRaw(prefix []byte) []byte {
	out := make([]byte, len(prefix)+len(k.data))
	copy(out, prefix)
	copy(out[len(prefix):], k.data)

	return out
}

// ToHex returns the lowercase hex encoding of the Key's raw bytes (with
// no prefix).
func (k Key) ToHex() string {
	return hex.EncodeToString(k.data)
}

// Bytes returns the Key's prefix-free encoded bytes. The returned slice
// aliases the Key's internal storage and must not be modified.
func (k Key) Bytes() []byte {
	return k.data
}

// Len counts the Key's elements by repeated skip, per spec section 4.7.
func (k Key) Len() (int, error) {
	r := iobuf.NewReader(k.data)
	n := 0
	for !r.Done() {
		sep, err := element.Skip(r)
		if err != nil {
			return 0, err
		}
		if sep {
			break
		}
		n++
	}

	return n, nil
}

// Get returns the i-th element, skipping the elements before it without
// decoding them.
// Negative indices count from the end (Get(-1) is the last element),
// following the standard convention rather than the source's flagged
// off-by-one arithmetic (spec section 9, "Negative indexing").
func (k Key) Get(i int) (any, error) {
	if i < 0 {
		n, err := k.Len()
		if err != nil {
			return nil, err
		}
		i += n
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: index out of range", errs.ErrOutOfRange)
	}

	r := iobuf.NewReader(k.data)
	for idx := 0; ; idx++ {
		if r.Done() {
			return nil, fmt.Errorf("%w: index %d out of range", errs.ErrOutOfRange, i)
		}
		if b, ok := r.Peek(); ok && element.Kind(b) == element.KindSep {
			return nil, fmt.Errorf("%w: index %d out of range", errs.ErrOutOfRange, i)
		}

		if idx == i {
			return element.Decode(r)
		}

		sep, err := element.Skip(r)
		if err != nil {
			return nil, err
		}
		if sep {
			return nil, fmt.Errorf("%w: index %d out of range", errs.ErrOutOfRange, i)
		}
	}
}

// Tuple materializes the Key's full decoded tuple.
func (k Key) Tuple() (Tuple, error) {
	r := iobuf.NewReader(k.data)

	return decodeTupleBody(r)
}

// Iter is a lazy, one-element-at-a-time decoder over a Key's bytes.
type Iter struct {
	r *iobuf.Reader
}

// Iter returns a fresh element-at-a-time iterator over the Key, decoding
// lazily without materializing the full tuple (spec section 4.7,
// "iteration decodes elements lazily").
func (k Key) Iter() *Iter {
	return &Iter{r: iobuf.NewReader(k.data)}
}

// Next decodes and returns the next element. ok is false once the
// iterator reaches end of buffer or a KindSep.
func (it *Iter) Next() (v any, ok bool, err error) {
	if it.r.Done() {
		return nil, false, nil
	}
	if b, peeked := it.r.Peek(); peeked && element.Kind(b) == element.KindSep {
		return nil, false, nil
	}

	v, err = element.Decode(it.r)
	if err != nil {
		return nil, false, err
	}

	return v, true, nil
}

// Hash returns a deterministic hash of the Key's bytes, computed lazily
// and cached on first call. The sentinel value -1 is reserved to mean
// "not yet computed" by callers that store hashes alongside keys, so a
// real hash of -1 is remapped to -2 (spec section 3, "Key"). The cached
// value is written on the first call without any synchronization, so it
// is not safe to call Hash concurrently with itself on the same Key value.
func (k *Key) Hash() int64 {
	if k.hash != hashUnset {
		return k.hash
	}

	h := int64(xxhash.Sum64(k.data)) //nolint:gosec
	if h == hashUnset {
		h = hashComputedSentinelCollision
	}
	k.hash = h

	return h
}

// Equal reports whether two keys have identical encoded bytes.
func (k Key) Equal(other Key) bool {
	return bytes.Equal(k.data, other.data)
}

// Compare orders two keys by memcmp over their encoded bytes: shorter
// bytes sort less than longer bytes on an equal common prefix.
func (k Key) Compare(other Key) int {
	return bytes.Compare(k.data, other.data)
}

// EqualTuple reports whether the Key's decoded tuple equals t.
func (k Key) EqualTuple(t Tuple) bool {
	cmp, err := k.CompareTuple(t)

	return err == nil && cmp == 0
}

// CompareTuple orders the Key against a raw tuple without materializing
// the Key's own decoded form: it encodes t element by element into a
// scratch buffer and compares incrementally against the Key's bytes,
// stopping at the first mismatch. A tuple shorter than the Key (on an
// equal common prefix) sorts less; a longer one sorts greater.
func (k Key) CompareTuple(t Tuple) (int, error) {
	pos := 0
	for _, elem := range t {
		w := iobuf.NewWriter(16)
		if err := encodeElement(w, elem); err != nil {
			return 0, err
		}
		chunk := w.Finish()

		end := pos + len(chunk)
		hi := end
		if hi > len(k.data) {
			hi = len(k.data)
		}
		var kSlice []byte
		if pos <= len(k.data) {
			kSlice = k.data[pos:hi]
		}

		if cmp := bytes.Compare(kSlice, chunk); cmp != 0 {
			return cmp, nil
		}
		pos = end
	}

	if pos < len(k.data) {
		return 1, nil
	}

	return 0, nil
}

// Append concatenates two keys' bytes.
func (k Key) Append(other Key) Key {
	out := make([]byte, len(k.data)+len(other.data))
	copy(out, k.data)
	copy(out[len(k.data):], other.data)

	return Key{data: out, hash: hashUnset}
}

// AppendTuple encodes t and appends it to the Key's bytes.
func (k Key) AppendTuple(t Tuple) (Key, error) {
	w := iobuf.NewWriter(len(k.data) + 16)
	w.PutBytes(k.data)
	for _, elem := range t {
		if err := encodeElement(w, elem); err != nil {
			return Key{}, err
		}
	}

	return Key{data: w.Finish(), hash: hashUnset}, nil
}
