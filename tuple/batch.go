package tuple

import (
	"github.com/ordkv/tuplekey/internal/element"
	"github.com/ordkv/tuplekey/internal/iobuf"
)

// Packs encodes an ordered list of tuples into a single batch: tuple0 ||
// SEP || tuple1 || ... || tupleN-1, prefixed once by prefix. There is no
// trailing separator -- end of buffer terminates the last tuple.
func Packs(prefix []byte, tuples []Tuple) ([]byte, error) {
	w := iobuf.GetWriter()
	defer iobuf.PutWriter(w)

	w.PutBytes(prefix)
	for i, t := range tuples {
		if i > 0 {
			w.PutByte(byte(element.KindSep))
		}
		for _, elem := range t {
			if err := encodeElement(w, elem); err != nil {
				return nil, err
			}
		}
	}

	return cloneFinish(w), nil
}

// MustPacks panics if Packs returns an error.
func MustPacks(prefix []byte, tuples []Tuple) []byte {
	b, err := Packs(prefix, tuples)
	if err != nil {
		panic(err)
	}

	return b
}

// Unpacks decodes an entire batch from data, which must begin with
// prefix. It returns ok=false (not an error) if data does not start with
// prefix, mirroring Unpack.
func Unpacks(prefix []byte, data []byte) (tuples []Tuple, ok bool, err error) {
	if !bytesHasPrefix(data, prefix) {
		return nil, false, nil
	}

	r := iobuf.NewReader(data[len(prefix):])
	for {
		t, derr := decodeTupleBody(r)
		if derr != nil {
			return nil, true, derr
		}
		tuples = append(tuples, t)
		if r.Done() {
			break
		}
	}

	return tuples, true, nil
}
