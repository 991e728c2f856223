// Package varint implements the order-preserving variable-width unsigned
// integer encoding used throughout the tuplekey wire format.
//
// The encoding is big-endian and length-self-describing: the first byte
// both selects the width class and, for small values, carries the value
// itself. Because wider values always start with a strictly larger first
// byte than any narrower value, memcmp over encoded varints agrees with
// numeric order -- the property the rest of the codec depends on.
package varint

import (
	"fmt"

	"github.com/ordkv/tuplekey/errs"
	"github.com/ordkv/tuplekey/internal/iobuf"
)

// Width-class boundaries from the wire format table.
const (
	oneByteMax     = 240
	twoByteMax     = 2287  // 240 + 256*7 + 255
	threeByteMax   = 67823 // 2288 + 255*256 + 255
	firstTwoByte   = 241
	firstThreeByte = 249
	first4Byte     = 250
)

// trailerLen returns how many raw big-endian bytes are needed to hold v,
// for the >= 4-total-byte width classes (b in 250..255, trailer in 3..8
// bytes).
func trailerLen(v uint64) int {
	n := 3
	for n < 8 && v>>(8*n) != 0 {
		n++
	}

	return n
}

// Len returns the number of bytes Write(v) would emit, without encoding it.
func Len(v uint64) int {
	switch {
	case v <= oneByteMax:
		return 1
	case v <= twoByteMax:
		return 2
	case v <= threeByteMax:
		return 3
	default:
		return 1 + trailerLen(v)
	}
}

// Write encodes v as a minimal-width varint, appending it to w. If xor is
// non-zero, every emitted byte (including the first/width byte) is XORed
// with xor before being written -- used to invert the byte sequence for
// negative-magnitude kinds so that larger magnitudes sort earlier.
func Write(w *iobuf.Writer, v uint64, xor byte) {
	switch {
	case v <= oneByteMax:
		w.PutByte(byte(v) ^ xor)

		return
	case v <= twoByteMax:
		rem := v - oneByteMax
		w.PutByte(byte(firstTwoByte+rem/256) ^ xor)
		w.PutByte(byte(rem%256) ^ xor)

		return
	case v <= threeByteMax:
		rem := v - twoByteMax - 1
		w.PutByte(firstThreeByte ^ xor)
		w.PutByte(byte(rem>>8) ^ xor)
		w.PutByte(byte(rem) ^ xor)

		return
	}

	n := trailerLen(v)
	w.PutByte(byte(first4Byte+n-3) ^ xor)
	for i := n - 1; i >= 0; i-- {
		w.PutByte(byte(v>>(8*i)) ^ xor)
	}
}

// Read decodes one varint from r, XORing every consumed byte with xor
// before using it (both for width classification and value
// reconstruction), and returns the decoded value.
func Read(r *iobuf.Reader, xor byte) (uint64, error) {
	first, ok := r.Get()
	if !ok {
		return 0, fmt.Errorf("%w: missing varint first byte", errs.ErrTruncated)
	}
	first ^= xor

	switch {
	case first <= oneByteMax:
		return uint64(first), nil
	case first <= 248:
		next, err := readMasked(r, 1, xor)
		if err != nil {
			return 0, err
		}

		return oneByteMax + uint64(first-firstTwoByte)*256 + next[0], nil
	case first == firstThreeByte:
		next, err := readMasked(r, 2, xor)
		if err != nil {
			return 0, err
		}

		return twoByteMax + 1 + next[0]<<8 + next[1], nil
	case first >= first4Byte && first <= 255:
		n := int(first-first4Byte) + 3
		next, err := readMasked(r, n, xor)
		if err != nil {
			return 0, err
		}
		var v uint64
		for _, b := range next {
			v = v<<8 | b
		}

		return v, nil
	default:
		return 0, fmt.Errorf("%w: impossible varint width class %#x", errs.ErrCorrupt, first)
	}
}

// readMasked reads n bytes and XORs each with xor, returning them widened
// to uint64 for arithmetic convenience.
func readMasked(r *iobuf.Reader, n int, xor byte) ([]uint64, error) {
	raw, err := r.Take(n)
	if err != nil {
		return nil, fmt.Errorf("%w: varint trailer", errs.ErrTruncated)
	}
	out := make([]uint64, n)
	for i, b := range raw {
		out[i] = uint64(b ^ xor)
	}

	return out, nil
}

// SkipWidth reports how many bytes the varint occupies in total given its
// already-unmasked first byte, without reading the rest -- used by Element
// skip to advance past a varint payload cheaply.
func SkipWidth(first byte) (int, error) {
	switch {
	case first <= oneByteMax:
		return 1, nil
	case first <= 248:
		return 2, nil
	case first == firstThreeByte:
		return 3, nil
	case first >= first4Byte && first <= 255:
		return int(first-first4Byte) + 4, nil
	default:
		return 0, fmt.Errorf("%w: impossible varint width class %#x", errs.ErrCorrupt, first)
	}
}
