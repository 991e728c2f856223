package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeOffsetsRoundTrip(t *testing.T) {
	deltas := []uint64{3, 5, 10}

	enc := EncodeOffsets(deltas)
	offsets, consumed, err := DecodeOffsets(enc)
	require.NoError(t, err)
	require.Equal(t, len(enc), consumed)

	require.Equal(t, []uint64{0, 3, 8, 18}, offsets)
}

func TestDecodeOffsetsEmpty(t *testing.T) {
	enc := EncodeOffsets(nil)
	offsets, consumed, err := DecodeOffsets(enc)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, offsets)
	require.Equal(t, len(enc), consumed)
}

func TestDecodeOffsetsReportsConsumedPrefix(t *testing.T) {
	deltas := []uint64{1, 2}
	enc := EncodeOffsets(deltas)
	trailer := []byte{0xDE, 0xAD}

	data := append(append([]byte{}, enc...), trailer...)
	offsets, consumed, err := DecodeOffsets(data)
	require.NoError(t, err)
	require.Equal(t, len(enc), consumed)
	require.Equal(t, []uint64{0, 1, 3}, offsets)
	require.Equal(t, trailer, data[consumed:])
}

func TestDecodeOffsetsTruncated(t *testing.T) {
	_, _, err := DecodeOffsets(nil)
	require.Error(t, err)
}
