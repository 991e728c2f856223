// Package iobuf provides the cursor primitives the codec uses to walk an
// encoded byte buffer and to build one.
//
// Reader and Writer are transient: they exist only for the duration of a
// single encode or decode call and are never persisted. Neither type is
// safe for concurrent use.
package iobuf

import (
	"fmt"

	"github.com/ordkv/tuplekey/errs"
)

// Reader is a bounds-checked cursor over a byte slice.
//
// It does not own the slice; the caller must keep it alive for the
// lifetime of the Reader.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor offset into the underlying buffer.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Done reports whether the cursor has reached the end of the buffer.
func (r *Reader) Done() bool { return r.pos >= len(r.buf) }

// Get reads one byte and advances the cursor. It reports false at EOF
// without returning an error, matching the source contract: callers use
// Get for the common "maybe there's one more byte" case and Ensure when a
// missing byte is itself an error.
func (r *Reader) Get() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	b := r.buf[r.pos]
	r.pos++

	return b, true
}

// Peek inspects the next byte without advancing the cursor. It reports
// false at EOF.
func (r *Reader) Peek() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}

	return r.buf[r.pos], true
}

// Ensure verifies that at least n bytes remain, returning ErrTruncated
// otherwise.
func (r *Reader) Ensure(n int) error {
	if r.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncated, n, r.Remaining())
	}

	return nil
}

// Take returns the next n bytes and advances the cursor past them. The
// returned slice aliases the underlying buffer; callers must copy it if
// they need to retain it beyond the buffer's lifetime.
func (r *Reader) Take(n int) ([]byte, error) {
	if err := r.Ensure(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if err := r.Ensure(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}

// StartsWith reports whether the unread portion of the buffer begins with
// prefix, without advancing the cursor.
func (r *Reader) StartsWith(prefix []byte) bool {
	if r.Remaining() < len(prefix) {
		return false
	}

	for i, b := range prefix {
		if r.buf[r.pos+i] != b {
			return false
		}
	}

	return true
}
