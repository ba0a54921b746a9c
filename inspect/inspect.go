// Package inspect traces the decoding of CHE-v2 strings step by step.
//
// Every structural field the decoder reads is a state of a small state
// machine, so a report shows exactly where each record starts, how its
// name and length fields were interpreted and where decoding stopped.
// A successful trace yields the same list as [che.Decode], a failed one
// the same error sentinel.
package inspect

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/internal/errorutil"
	"github.com/ghettovoice/che/internal/wire"
)

// State is a decode step.
type State string

const (
	StateStart       State = "start"
	StateMarker      State = "marker"
	StateName        State = "name"
	StateNamePayload State = "name-payload"
	StateLength1     State = "length-1"
	StateLength2     State = "length-2"
	StateLength3     State = "length-3"
	StateValue       State = "value"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

type trigger string

const (
	trigMarker      trigger = "read-marker"
	trigName        trigger = "read-name"
	trigNamePayload trigger = "read-name-payload"
	trigLength      trigger = "read-length"
	trigValue       trigger = "read-value"
	trigEnd         trigger = "end"
	trigFail        trigger = "fail"
)

// Step is a single decode step.
type Step struct {
	State State
	// Offset is the index of the first byte read by the step.
	Offset int
	// Raw holds the bytes read by the step.
	Raw  []byte
	Note string
}

func (s Step) String() string {
	return fmt.Sprintf("%6d  %-12s  %-8q  %s", s.Offset, s.State, s.Raw, s.Note)
}

type tracer struct {
	l    wire.V2Layout
	data []byte
	c    *wire.Cursor
	sm   *stateless.StateMachine

	next  trigger
	err   error
	steps []Step
	list  che.List

	entry   che.Entry
	nameLen int
	digits  [2]uint
	length  uint
}

func newTracer(data []byte) *tracer {
	t := &tracer{
		l:    wire.V2,
		data: data,
		c:    wire.NewCursor(data),
		sm:   stateless.NewStateMachine(StateStart),
	}
	t.configure()
	return t
}

func (t *tracer) configure() {
	t.sm.Configure(StateStart).
		Permit(trigMarker, StateMarker)
	t.sm.Configure(StateMarker).
		OnEntry(t.action(t.readMarker)).
		Permit(trigName, StateName).
		Permit(trigEnd, StateDone).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateName).
		OnEntry(t.action(t.readName)).
		Permit(trigNamePayload, StateNamePayload).
		Permit(trigLength, StateLength1).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateNamePayload).
		OnEntry(t.action(t.readNamePayload)).
		Permit(trigLength, StateLength1).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateLength1).
		OnEntry(t.action(t.readLength1)).
		Permit(trigLength, StateLength2).
		Permit(trigValue, StateValue).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateLength2).
		OnEntry(t.action(t.readLength2)).
		Permit(trigLength, StateLength3).
		Permit(trigValue, StateValue).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateLength3).
		OnEntry(t.action(t.readLength3)).
		Permit(trigValue, StateValue).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateValue).
		OnEntry(t.action(t.readValue)).
		Permit(trigName, StateName).
		Permit(trigEnd, StateDone).
		Permit(trigFail, StateFailed)
	t.sm.Configure(StateDone)
	t.sm.Configure(StateFailed)
}

// action wraps a step so that read errors move the machine to the failed state
// instead of aborting the transition.
func (t *tracer) action(fn func() (trigger, string, error)) func(context.Context, ...any) error {
	return func(context.Context, ...any) error {
		state := t.sm.MustState().(State) //nolint:forcetypeassert
		start := t.c.Offset()
		next, note, err := fn()
		step := Step{
			State:  state,
			Offset: start,
			Raw:    t.data[start:t.c.Offset()],
			Note:   note,
		}
		if err != nil {
			t.err = err
			step.Note = err.Error()
			next = trigFail
		}
		t.steps = append(t.steps, step)
		t.next = next
		return nil
	}
}

func (t *tracer) run(ctx context.Context) error {
	t.next = trigMarker
	for t.next != "" {
		trig := t.next
		t.next = ""
		if err := t.sm.FireCtx(ctx, trig); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(t.err)
}

func (t *tracer) afterRecord() trigger {
	if t.c.Done() {
		return trigEnd
	}
	return trigName
}

func (t *tracer) readMarker() (trigger, string, error) {
	if t.c.Done() {
		return "", "", errtrace.Wrap(che.ErrEmptyInput)
	}
	if b := t.data[0]; b != wire.Marker {
		return "", "", errtrace.Wrap(errorutil.NewWrapperError(
			che.ErrBadMarker,
			"got 0x%02x, want %q", b, wire.Marker,
		))
	}
	t.c = wire.NewCursorAt(t.data, 1)
	t.list = che.List{}
	return t.afterRecord(), "CHE-v2", nil
}

func (t *tracer) readName() (trigger, string, error) {
	t.entry = che.Entry{}
	first, second, err := t.l.ReadNameBytes(t.c)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	if t.l.IsEscape(first) {
		t.nameLen = t.l.NameLen(second)
		return trigNamePayload, fmt.Sprintf("literal name of %d bytes", t.nameLen), nil
	}
	id := che.ID(t.l.ID(first, second))
	t.entry.Name = id
	return trigLength, fmt.Sprintf("id %d", id), nil
}

func (t *tracer) readNamePayload() (trigger, string, error) {
	lit, err := t.c.Take(t.nameLen, che.ErrTruncatedName)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	t.entry.Name = che.Literal(lit)
	return trigLength, fmt.Sprintf("name %q", lit), nil
}

func (t *tracer) readLength1() (trigger, string, error) {
	d, more, err := t.l.ReadTagged(t.c)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	if more {
		t.digits[0] = d
		return trigLength, fmt.Sprintf("digit %d, more follows", d), nil
	}
	t.length = d
	return trigValue, fmt.Sprintf("value length %d", t.length), nil
}

func (t *tracer) readLength2() (trigger, string, error) {
	d, more, err := t.l.ReadTagged(t.c)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	if more {
		t.digits[1] = d
		return trigLength, fmt.Sprintf("digit %d, more follows", d), nil
	}
	t.length = t.l.Length2(t.digits[0], d)
	return trigValue, fmt.Sprintf("digit %d, value length %d", d, t.length), nil
}

func (t *tracer) readLength3() (trigger, string, error) {
	d, err := t.l.ReadPlain(t.c)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	t.length = t.l.Length3(t.digits[0], t.digits[1], d)
	return trigValue, fmt.Sprintf("digit %d, value length %d", d, t.length), nil
}

func (t *tracer) readValue() (trigger, string, error) {
	val, err := t.c.Take(int(t.length), che.ErrTruncatedValue)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	t.entry.Value = string(val)
	t.list = append(t.list, t.entry)
	return t.afterRecord(), fmt.Sprintf("entry %d complete", len(t.list)-1), nil
}
