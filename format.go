package che

import (
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/che/internal/errorutil"
	"github.com/ghettovoice/che/internal/wire"
)

// Format is a CHE wire format version.
type Format interface {
	// Name returns the format name, e.g. "CHE-v2".
	Name() string
	// Limits returns the format boundaries.
	Limits() Limits
	// Encode encodes the list.
	Encode(list List) ([]byte, error)
	// Append appends the encoded list to dst.
	// On error dst is returned unchanged.
	Append(dst []byte, list List) ([]byte, error)
	// Decode decodes data into a new list.
	Decode(data []byte) (List, error)
}

// Limits describes the boundaries of a [Format].
type Limits struct {
	// MinByte and MaxByte bound every structural byte.
	MinByte, MaxByte byte
	MaxNameLen       int
	MaxID            ID
	MaxValueLen      int
	// ValueLenTiers holds the largest value length written with 1, 2, ... length bytes.
	ValueLenTiers []int
}

// Check validates a single entry against the limits.
func (lim Limits) Check(e Entry) error {
	switch n := e.Name.(type) {
	case Literal:
		if len(n) == 0 {
			return errtrace.Wrap(ErrNameEmpty)
		}
		if len(n) > lim.MaxNameLen {
			return errtrace.Wrap(errorutil.NewWrapperError(
				ErrNameTooLong,
				"name length %d exceeds %d", len(n), lim.MaxNameLen,
			))
		}
	case ID:
		if n > lim.MaxID {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrIDTooLarge, "id %d exceeds %d", n, lim.MaxID))
		}
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNameType, "got %T", e.Name))
	}
	if len(e.Value) > lim.MaxValueLen {
		return errtrace.Wrap(errorutil.NewWrapperError(
			ErrValueTooLong,
			"value length %d exceeds %d", len(e.Value), lim.MaxValueLen,
		))
	}
	return nil
}

// Validate checks every entry and reports all problems at once.
func (lim Limits) Validate(list List) error {
	var errs []error
	for i, e := range list {
		if err := lim.Check(e); err != nil {
			errs = append(errs, entryError(i, err))
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid header list:", errs...))
}

func appendList(f *format, dst []byte, list List) ([]byte, error) {
	n := len(dst)
	lim := &f.lim
	dst = append(dst, wire.Marker)
	for i, e := range list {
		if err := lim.Check(e); err != nil {
			return dst[:n], errtrace.Wrap(entryError(i, err))
		}
		dst = f.appendRecord(dst, e)
	}
	return dst, nil
}

func entryError(i int, err error) error {
	return &EntryError{Index: i, Err: err}
}

// EntryError reports the entry an encode error was found in.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "entry " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *EntryError) Unwrap() error { return e.Err }

func encodeList(f *format, list List) ([]byte, error) {
	size := 1
	for _, e := range list {
		size += 5 + len(e.Value)
		if lit, ok := e.Name.(Literal); ok {
			size += len(lit)
		}
	}
	data, err := appendList(f, make([]byte, 0, size), list)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return data, nil
}

func decodeList(f *format, data []byte) (List, error) {
	if len(data) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	if data[0] != wire.Marker {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(
			ErrBadMarker,
			"got 0x%02x, want %q", data[0], wire.Marker,
		))
	}

	c := wire.NewCursorAt(data, 1)
	list := make(List, 0, 8)
	for !c.Done() {
		e, err := f.readRecord(c)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		list = append(list, e)
	}
	return list, nil
}

var (
	// V2 is the tagged format, the default one.
	V2 Format = &format{
		name: "CHE-v2",
		l:    wire.V2,
		lim: Limits{
			MinByte:       wire.V2.Min,
			MaxByte:       wire.V2.Max,
			MaxNameLen:    int(wire.V2.MaxNameLen),
			MaxID:         ID(wire.V2.MaxID),
			MaxValueLen:   int(wire.V2.MaxValueLen),
			ValueLenTiers: []int{int(wire.V2.OneMax), int(wire.V2.TwoMax), int(wire.V2.MaxValueLen)},
		},
	}
	// V1 is the legacy format with fixed two byte value lengths.
	V1 Format = &format{
		name: "CHE-v1",
		l:    wire.V1,
		lim: Limits{
			MinByte:       wire.V1.Min,
			MaxByte:       wire.V1.Max,
			MaxNameLen:    int(wire.V1.MaxNameLen),
			MaxID:         ID(wire.V1.MaxID),
			MaxValueLen:   int(wire.V1.MaxValueLen),
			ValueLenTiers: []int{int(wire.V1.MaxValueLen)},
		},
	}
)

type format struct {
	name string
	l    wire.Layout
	lim  Limits
}

func (f *format) Name() string { return f.name }

func (f *format) Limits() Limits {
	lim := f.lim
	lim.ValueLenTiers = slices.Clone(f.lim.ValueLenTiers)
	return lim
}

func (f *format) Encode(list List) ([]byte, error) {
	return errtrace.Wrap2(encodeList(f, list))
}

func (f *format) Append(dst []byte, list List) ([]byte, error) {
	return errtrace.Wrap2(appendList(f, dst, list))
}

func (f *format) Decode(data []byte) (List, error) {
	return errtrace.Wrap2(decodeList(f, data))
}

func (f *format) appendRecord(dst []byte, e Entry) []byte {
	switch n := e.Name.(type) {
	case Literal:
		dst = f.l.AppendLiteral(dst, string(n))
	case ID:
		dst = f.l.AppendID(dst, uint(n))
	}
	dst = f.l.AppendLength(dst, uint(len(e.Value)))
	return append(dst, e.Value...)
}

func (f *format) readRecord(c *wire.Cursor) (Entry, error) {
	var e Entry
	lit, id, isID, err := f.l.ReadName(c)
	if err != nil {
		return e, errtrace.Wrap(err)
	}
	if isID {
		e.Name = ID(id)
	} else {
		e.Name = Literal(lit)
	}

	n, err := f.l.ReadLength(c)
	if err != nil {
		return e, errtrace.Wrap(err)
	}
	val, err := c.Take(int(n), ErrTruncatedValue)
	if err != nil {
		return e, errtrace.Wrap(err)
	}
	e.Value = string(val)
	return e, nil
}

// Formats returns all known formats, newest first.
func Formats() []Format { return []Format{V2, V1} }

// FormatByName looks up a format by name.
// Both the full ("CHE-v2") and the short ("v2") names are accepted, case-insensitively.
func FormatByName(name string) (Format, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(Formats(), func(f Format) bool {
		full := strings.ToLower(f.Name())
		return name == full || "che-"+name == full
	})
	if i < 0 {
		return nil, false
	}
	return Formats()[i], true
}
