package tuple

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTupleEqualWidensIntegerTypes(t *testing.T) {
	a := Tuple{int(5), uint8(1), "x"}
	b := Tuple{int64(5), uint64(1), "x"}

	require.True(t, a.Equal(b))
}

func TestTupleEqualDifferentLength(t *testing.T) {
	require.False(t, Tuple{1}.Equal(Tuple{1, 2}))
}

func TestTupleEqualBlobByContent(t *testing.T) {
	a := Tuple{[]byte{0x01, 0x02}}
	b := Tuple{[]byte{0x01, 0x02}}
	c := Tuple{[]byte{0x01, 0x03}}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestTupleEqualTimeByInstantAndOffset(t *testing.T) {
	base := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	same := base.Truncate(time.Millisecond)
	differentOffset := base.In(time.FixedZone("", 3600))

	require.True(t, Tuple{base}.Equal(Tuple{same}))
	require.False(t, Tuple{base}.Equal(Tuple{differentOffset}))
}

func TestTupleEqualNilElements(t *testing.T) {
	require.True(t, Tuple{nil, "x"}.Equal(Tuple{nil, "x"}))
	require.False(t, Tuple{nil}.Equal(Tuple{"x"}))
}
