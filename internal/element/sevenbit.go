package element

import "github.com/ordkv/tuplekey/internal/iobuf"

// PackBytes writes data using the 7-bit packed encoding used for Blob and
// Text payloads: every emitted byte has its high bit set (>= 0x80), which
// lets a reader detect the end of the payload at the first byte whose high
// bit is clear (the next element's kind byte, KindSep, or end of buffer)
// without a length prefix, while still preserving the memcmp order of the
// original bytes.
//
// Implementation note: conceptually this repacks the input's 8-bit groups
// into 7-bit groups, one group per output byte, zero-padding the final
// partial group. That is equivalent to (and implemented here as) a plain
// bit accumulator rather than the shift/trailer bookkeeping in the wire
// format description, but produces byte-identical output.
func PackBytes(w *iobuf.Writer, data []byte) {
	var acc uint32
	var nbits uint

	for _, o := range data {
		acc = acc<<8 | uint32(o)
		nbits += 8

		for nbits >= 7 {
			shift := nbits - 7
			w.PutByte(0x80 | byte(acc>>shift&0x7F))
			acc &= (1 << shift) - 1
			nbits = shift
		}
	}

	if nbits > 0 {
		// Final partial group: left-align the remaining bits and zero-pad
		// on the right to fill out 7 bits.
		w.PutByte(0x80 | byte(acc<<(7-nbits)&0x7F))
	}
}

// UnpackBytes reads a 7-bit packed payload from r, stopping at (and not
// consuming) the first byte whose high bit is clear, or at end of buffer.
func UnpackBytes(r *iobuf.Reader) []byte {
	var out []byte
	var acc uint32
	var nbits uint

	for {
		b, ok := r.Peek()
		if !ok || b&0x80 == 0 {
			break
		}
		_, _ = r.Get() // Peek already confirmed a byte is present

		acc = acc<<7 | uint32(b&0x7F)
		nbits += 7

		if nbits >= 8 {
			shift := nbits - 8
			out = append(out, byte(acc>>shift))
			acc &= (1 << shift) - 1
			nbits = shift
		}
	}

	return out
}
