// Package tuplekey provides an order-preserving binary encoding for
// tuples of typed values, suitable for use as keys in a sorted
// key-value store.
//
// Encoded bytes compare, under a plain memcmp/bytes.Compare, in the
// same order as the original tuples compare element by element. This
// lets a store range-scan, prefix-filter, and paginate over encoded
// keys without ever decoding them.
//
// # Core Features
//
//   - Self-describing element encoding: null, bool, signed and unsigned
//     integers, blobs, text, timestamps, and UUIDs each carry a leading
//     kind byte and a self-terminating payload, so no out-of-band schema
//     is needed to decode a key.
//   - Order-preserving variable-width integers, modeled on SQLite4's
//     varint scheme, so small values stay small without breaking sort
//     order.
//   - Tuple and batch framing with no inter-element delimiter; batches
//     of tuples share one prefix and are separated by a single
//     reserved separator byte.
//   - A Key value type wrapping encoded bytes with lazy iteration,
//     cached hashing, and both key-to-key and key-to-tuple comparison.
//
// # Basic Usage
//
// Encoding and decoding a tuple:
//
//	import "github.com/ordkv/tuplekey/tuple"
//
//	prefix := []byte{0x01, 0x02}
//	raw, err := tuple.Pack(prefix, tuple.Tuple{"users", uint64(42)})
//
//	t, ok, err := tuple.Unpack(prefix, raw)
//	// ok is false (not an error) if raw doesn't start with prefix.
//
// Building a reusable Key:
//
//	k, err := tuple.NewKey("users", uint64(42))
//	raw := k.ToRaw(prefix)
//	h := k.Hash()
//
// # Package Structure
//
// The tuple package is the public facade. Element-level encoding,
// varint framing, and buffered I/O live under internal/ as
// implementation detail; errs holds the sentinel errors returned
// across package boundaries.
package tuplekey
