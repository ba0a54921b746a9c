// Package ioutil holds I/O helpers for rendering.
package ioutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter counts bytes written to the underlying writer and
// remembers the first error, after which all writes are skipped.
// It lets RenderTo implementations write unconditionally and check once.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter returns a CountingWriter over w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = err
	}
	return n, errtrace.Wrap(err)
}

// Write implements [io.Writer].
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return cw.track(cw.w.Write(p))
}

// WriteString implements [io.StringWriter].
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return cw.track(io.WriteString(cw.w, s))
}

// Fprintf writes formatted output.
func (cw *CountingWriter) Fprintf(format string, args ...any) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return cw.track(fmt.Fprintf(cw.w, format, args...))
}

// Result returns the number of bytes written and the first error.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter takes a CountingWriter over w from the pool.
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets cw and returns it to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cntWrtPool.Put(cw)
}
