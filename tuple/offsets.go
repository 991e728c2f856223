package tuple

import (
	"fmt"

	"github.com/ordkv/tuplekey/internal/iobuf"
	"github.com/ordkv/tuplekey/internal/varint"
)

// EncodeOffsets encodes deltas as a length-prefixed array of varints:
// count || delta_1 || ... || delta_count. This is consumed by the
// external value layer to reconstruct cumulative offsets into a batched
// value without re-scanning the batch's own framing.
func EncodeOffsets(deltas []uint64) []byte {
	w := iobuf.GetWriter()
	defer iobuf.PutWriter(w)

	varint.Write(w, uint64(len(deltas)), 0)
	for _, d := range deltas {
		varint.Write(w, d, 0)
	}

	return cloneFinish(w)
}

// DecodeOffsets decodes an offset table produced by EncodeOffsets. It
// returns the running sum of the deltas, prefixed with 0 (so the result
// has length count+1 and offsets[i] is the start of the i-th sub-record),
// along with the number of bytes consumed from data so the caller can
// resume reading immediately after the table.
func DecodeOffsets(data []byte) (offsets []uint64, consumed int, err error) {
	r := iobuf.NewReader(data)

	count, err := varint.Read(r, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: offset table count", err)
	}

	offsets = make([]uint64, count+1)
	var sum uint64
	for i := range count {
		d, err := varint.Read(r, 0)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: offset table delta %d", err, i)
		}
		sum += d
		offsets[i+1] = sum
	}

	return offsets, r.Pos(), nil
}
