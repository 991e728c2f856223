package tuple

import (
	"testing"

	"github.com/ordkv/tuplekey/errs"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	tup := Tuple{"users", uint64(42), true, []byte{0x01}}

	raw, err := Pack(prefix, tup)
	require.NoError(t, err)
	require.True(t, bytesHasPrefix(raw, prefix))

	got, ok, err := Unpack(prefix, raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, tup.Equal(got))
}

func TestPackSingleElementWrapsInTuple(t *testing.T) {
	raw, err := Pack(nil, uint64(7))
	require.NoError(t, err)

	got, ok, err := Unpack(nil, raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, Tuple{uint64(7)}.Equal(got))
}

func TestPackKeyPassthrough(t *testing.T) {
	k, err := NewKeyFromTuple(Tuple{"x"})
	require.NoError(t, err)

	prefix := []byte{0x01}
	raw, err := Pack(prefix, k)
	require.NoError(t, err)
	require.Equal(t, k.ToRaw(prefix), raw)
}

func TestUnpackRejectsForeignPrefix(t *testing.T) {
	raw, err := Pack([]byte{0x01}, Tuple{"x"})
	require.NoError(t, err)

	_, ok, err := Unpack([]byte{0x02}, raw)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnpackPropagatesDecodeError(t *testing.T) {
	_, ok, err := Unpack(nil, []byte{0xFF})
	require.True(t, ok)
	require.ErrorIs(t, err, errs.ErrCorrupt)
}

func TestMustPackPanicsOnUnsupportedType(t *testing.T) {
	require.Panics(t, func() {
		MustPack(nil, Tuple{struct{}{}})
	})
}

func TestMustUnpackReturnsOkFalseWithoutPanic(t *testing.T) {
	raw, err := Pack([]byte{0x01}, Tuple{"x"})
	require.NoError(t, err)

	got, ok := MustUnpack([]byte{0x02}, raw)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestPackIntConvenience(t *testing.T) {
	raw := PackInt([]byte{0x01}, 99)
	got, ok, err := Unpack([]byte{0x01}, raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, Tuple{uint64(99)}.Equal(got))
}

func TestPackEmptyTuple(t *testing.T) {
	raw, err := Pack(nil, Tuple{})
	require.NoError(t, err)
	require.Empty(t, raw)

	got, ok, err := Unpack(nil, raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, got)
}
