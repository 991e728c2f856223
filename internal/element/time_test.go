package element

import (
	"testing"
	"time"

	"github.com/ordkv/tuplekey/errs"
	"github.com/stretchr/testify/require"
)

func TestCompositeTimeRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 30, 12, 0, 0, 0, time.FixedZone("", 8*3600)),
		time.Date(2026, 7, 30, 12, 0, 0, 0, time.FixedZone("", -5*3600-1800)),
		time.UnixMilli(0).UTC(),
		time.UnixMilli(-1).UTC(),
		time.UnixMilli(-1000000).UTC(),
	}

	for _, tt := range cases {
		mag, neg, err := CompositeTime(tt)
		require.NoError(t, err)

		got := DecomposeTime(mag, neg)
		require.Equal(t, tt.UnixMilli(), got.UnixMilli())

		_, wantOffset := tt.Zone()
		_, gotOffset := got.Zone()
		require.Equal(t, wantOffset, gotOffset)
	}
}

func TestCompositeTimeTruncatesUnalignedOffset(t *testing.T) {
	tt := time.Date(2026, 7, 30, 12, 0, 0, 0, time.FixedZone("", 3700))

	mag, neg, err := CompositeTime(tt)
	require.NoError(t, err)

	_, gotOffset := DecomposeTime(mag, neg).Zone()
	require.Equal(t, 3600, gotOffset)
}

func TestCompositeTimeRejectsOffsetOutOfRange(t *testing.T) {
	tt := time.Date(2026, 7, 30, 12, 0, 0, 0, time.FixedZone("", 13*3600))

	_, _, err := CompositeTime(tt)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestCompositeTimeSignSplitsAtEpoch(t *testing.T) {
	_, neg, err := CompositeTime(time.UnixMilli(0).UTC())
	require.NoError(t, err)
	require.False(t, neg)

	_, neg, err = CompositeTime(time.UnixMilli(-1).UTC())
	require.NoError(t, err)
	require.True(t, neg)
}
