package dict

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/internal/errorutil"
)

// Compact returns a copy of the list with literal names known to d replaced by their IDs.
// Unknown names and existing IDs are kept as is.
func Compact(list che.List, d Dictionary) che.List {
	return compact(list, d, che.V2.Limits().MaxID)
}

// CompactFor is like [Compact] but only uses IDs the format f can encode.
func CompactFor(f che.Format, list che.List, d Dictionary) che.List {
	return compact(list, d, f.Limits().MaxID)
}

func compact(list che.List, d Dictionary, maxID che.ID) che.List {
	out := list.Clone()
	for i, e := range out {
		lit, ok := e.Name.(che.Literal)
		if !ok {
			continue
		}
		if id, ok := d.ID(string(lit)); ok && id <= maxID {
			out[i].Name = id
		}
	}
	return out
}

// Expand returns a copy of the list with IDs replaced by the names from d.
// It fails with [ErrUnknownID] on the first ID d doesn't know.
func Expand(list che.List, d Dictionary) (che.List, error) {
	out := list.Clone()
	for i, e := range out {
		id, ok := e.Name.(che.ID)
		if !ok {
			continue
		}
		name, ok := d.Name(id)
		if !ok {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownID, "entry %d: id %d", i, id))
		}
		out[i].Name = che.Literal(name)
	}
	return out, nil
}

// Resolver adapts d for [che.RenderOptions.Names].
func Resolver(d Dictionary) func(che.ID) (string, bool) {
	return d.Name
}
