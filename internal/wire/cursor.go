package wire

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/che/internal/errorutil"
)

// Cursor is a read position over a complete encoded string.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// NewCursorAt returns a cursor positioned at off, clamped to len(buf).
// Offsets it reports stay relative to the start of buf.
func NewCursorAt(buf []byte, off int) *Cursor {
	return &Cursor{buf: buf, off: max(0, min(off, len(buf)))}
}

// Offset returns the index of the next unread byte.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Done reports whether all bytes were consumed.
func (c *Cursor) Done() bool { return c.off >= len(c.buf) }

// Byte consumes one structural byte and checks it against the alphabet.
// At the end of input it fails with truncErr.
func (c *Cursor) Byte(a Alphabet, truncErr error) (byte, error) {
	if c.off >= len(c.buf) {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(truncErr, "offset %d: unexpected end of input", c.off))
	}
	b := c.buf[c.off]
	if !a.Contains(b) {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(
			ErrByteOutOfRange,
			"offset %d: byte 0x%02x outside [0x%02x, 0x%02x]", c.off, b, a.Min, a.Max,
		))
	}
	c.off++
	return b, nil
}

// Take consumes n payload bytes. The returned slice aliases the input.
func (c *Cursor) Take(n int, truncErr error) ([]byte, error) {
	if n > len(c.buf)-c.off {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(
			truncErr,
			"offset %d: need %d bytes, %d left", c.off, n, len(c.buf)-c.off,
		))
	}
	p := c.buf[c.off : c.off+n]
	c.off += n
	return p, nil
}
