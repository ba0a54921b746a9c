package dict

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/internal/errorutil"
	"github.com/ghettovoice/che/internal/syncutil"
)

// Error represents a dictionary error.
type Error = errorutil.Error

const (
	// ErrInvalidName is returned when adding a name that is not a valid header field name.
	ErrInvalidName Error = "invalid header name"
	// ErrDuplicate is returned when adding a name or an ID that is already taken.
	ErrDuplicate Error = "duplicate dictionary entry"
	// ErrIDOutOfRange is returned when adding an ID the default format can't encode.
	ErrIDOutOfRange Error = "id out of range"
	// ErrUnknownID is returned by [Expand] for an ID the dictionary doesn't know.
	ErrUnknownID Error = "unknown header id"
)

// Dictionary maps header names to IDs and back.
type Dictionary interface {
	// ID returns the ID of the header name.
	ID(name string) (che.ID, bool)
	// Name returns the canonical header name of the ID.
	Name(id che.ID) (string, bool)
}

// Entry is a single dictionary mapping.
type Entry struct {
	Name string `yaml:"name"`
	ID   che.ID `yaml:"id"`
}

// Table is a [Dictionary] safe for concurrent use.
// The zero value is an empty table ready to use.
type Table struct {
	mu    sync.Mutex // serializes writers
	ids   syncutil.RWMap[string, che.ID]
	names syncutil.RWMap[che.ID, string]
}

// NewTable creates a table with the given entries.
func NewTable(entries ...Entry) (*Table, error) {
	t := new(Table)
	var errs []error
	for _, e := range entries {
		if err := t.Add(e.Name, e.ID); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errorutil.JoinPrefix("build dictionary:", errs...); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return t, nil
}

// Add maps the name to the ID.
func (t *Table) Add(name string, id che.ID) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, "%q", name))
	}
	if maxID := che.V2.Limits().MaxID; id > maxID {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrIDOutOfRange, "id %d exceeds %d", id, maxID))
	}

	name = CanonicName(name)

	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.ids.Get(name); ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDuplicate, "name %q already has id %d", name, prev))
	}
	if prev, ok := t.names.Get(id); ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDuplicate, "id %d already taken by %q", id, prev))
	}
	t.ids.Set(name, id)
	t.names.Set(id, name)
	return nil
}

// Remove deletes the mapping of the name.
func (t *Table) Remove(name string) bool {
	name = CanonicName(name)

	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.ids.Get(name)
	if !ok {
		return false
	}
	t.ids.Del(name)
	t.names.Del(id)
	return true
}

// ID implements [Dictionary].
func (t *Table) ID(name string) (che.ID, bool) {
	if t == nil {
		return 0, false
	}
	return t.ids.Get(CanonicName(name))
}

// Name implements [Dictionary].
func (t *Table) Name(id che.ID) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.names.Get(id)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.names.Len()
}

// Entries returns all entries ordered by ID.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, t.Len())
	for id, name := range t.names.All() {
		entries = append(entries, Entry{Name: name, ID: id})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return cmp.Compare(a.ID, b.ID) })
	return entries
}

// Fingerprint returns a hash of the entries.
// Tables with the same mappings have the same fingerprint.
func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte
	for _, e := range t.Entries() {
		buf = binary.BigEndian.AppendUint32(buf[:0], uint32(e.ID))
		buf = append(buf, e.Name...)
		buf = append(buf, 0)
		d.Write(buf)
	}
	return d.Sum64()
}

// FormatFingerprint renders a fingerprint as 16 hex digits.
func FormatFingerprint(fp uint64) string { return fmt.Sprintf("%016x", fp) }
