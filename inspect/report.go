package inspect

import (
	"context"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/internal/ioutil"
)

// Report is the result of [Trace].
type Report struct {
	// Steps lists every decode step in order, the last one failed if Err is set.
	Steps []Step
	// Entries holds the decoded list, nil on failure.
	Entries che.List
	// Err is the decode error.
	Err error
}

// Trace decodes CHE-v2 data recording every step.
// The report is never nil; its error is also returned.
func Trace(data []byte) (*Report, error) {
	return errtrace.Wrap2(TraceContext(context.Background(), data))
}

// TraceContext is like [Trace] but passes ctx to the state machine.
func TraceContext(ctx context.Context, data []byte) (*Report, error) {
	t := newTracer(data)
	err := t.run(ctx)
	r := &Report{Steps: t.steps, Err: err}
	if err != nil {
		return r, errtrace.Wrap(err)
	}
	r.Entries = t.list
	return r, nil
}

// RenderTo writes one line per step followed by the outcome.
func (r *Report) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprintf("%6s  %-12s  %-8s  %s\n", "OFFSET", "STATE", "RAW", "NOTE")
	for _, s := range r.Steps {
		cw.Fprintf("%s\n", s)
	}
	if r.Err != nil {
		cw.Fprintf("error: %v\n", r.Err)
	} else {
		cw.Fprintf("ok: %d entries\n", len(r.Entries))
	}
	return errtrace.Wrap2(cw.Result())
}

// Graph returns the decode state machine in DOT format.
func Graph() string {
	return newTracer(nil).sm.ToGraph()
}
