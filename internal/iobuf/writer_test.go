package iobuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterPutByteAndBytes(t *testing.T) {
	w := NewWriter(0)

	w.PutByte(0x01)
	w.PutBytes([]byte{0x02, 0x03})
	require.Equal(t, 3, w.Len())

	out := w.Finish()
	require.Equal(t, []byte{0x01, 0x02, 0x03}, out)
}

func TestWriterGrowsPastInitialCapacity(t *testing.T) {
	w := NewWriter(1)

	for i := range 100 {
		w.PutByte(byte(i))
	}

	out := w.Finish()
	require.Len(t, out, 100)
	for i := range 100 {
		require.Equal(t, byte(i), out[i])
	}
}

func TestWriterFinishDetaches(t *testing.T) {
	w := NewWriter(0)
	w.PutByte(0x01)

	out := w.Finish()
	require.Equal(t, []byte{0x01}, out)
	require.Equal(t, 0, w.Len(), "Finish must leave the Writer's internal buffer empty")
}

func TestWriterAbort(t *testing.T) {
	w := NewWriter(0)
	w.PutByte(0x01)
	w.Abort()

	require.Equal(t, 0, w.Len())
}

func TestGetPutWriterRoundTrip(t *testing.T) {
	w := GetWriter()
	require.Equal(t, 0, w.Len())

	w.PutBytes([]byte{0x01, 0x02})
	require.Equal(t, 2, w.Len())

	PutWriter(w)

	w2 := GetWriter()
	require.Equal(t, 0, w2.Len(), "a pooled Writer must come back reset")
	PutWriter(w2)
}

func TestPutWriterDropsOversizedBuffer(t *testing.T) {
	w := NewWriter(0)
	for range growThreshold*8 + 1 {
		w.PutByte(0)
	}

	// Must not panic, and the oversized buffer must not corrupt the pool
	// for subsequent GetWriter calls.
	PutWriter(w)

	w2 := GetWriter()
	require.Equal(t, 0, w2.Len())
	PutWriter(w2)
}
