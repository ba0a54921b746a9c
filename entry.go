package che

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/che/internal/errorutil"
	"github.com/ghettovoice/che/internal/ioutil"
	"github.com/ghettovoice/che/internal/util"
)

// Entry is a single header.
// Value may hold arbitrary bytes.
type Entry struct {
	Name  Name
	Value string
}

// Equal reports whether both entries have the same name variant, name and value.
func (e Entry) Equal(other Entry) bool {
	return nameEqual(e.Name, other.Name) && e.Value == other.Value
}

func (e Entry) String() string {
	if e.Name == nil {
		return ": " + e.Value
	}
	return e.Name.String() + ": " + e.Value
}

// List is an ordered list of headers.
// Order and duplicates are preserved by the codec.
type List []Entry

// RenderOptions controls list rendering.
type RenderOptions struct {
	// Names resolves IDs to names, IDs it can't resolve are rendered as "#<id>".
	Names func(ID) (string, bool)
}

// RenderTo writes the list as "Name: value" lines.
func (l List) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, e := range l {
		cw.WriteString(renderName(e.Name, opts))
		cw.WriteString(": ")
		cw.WriteString(e.Value)
		cw.WriteString("\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the list as "Name: value" lines.
func (l List) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	l.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (l List) String() string { return l.Render(nil) }

func renderName(n Name, opts *RenderOptions) string {
	switch n := n.(type) {
	case nil:
		return ""
	case ID:
		if opts != nil && opts.Names != nil {
			if s, ok := opts.Names(n); ok {
				return s
			}
		}
		return n.String()
	default:
		return n.String()
	}
}

// Format implements [fmt.Formatter].
// %s and %v print the rendered lines, %q quotes them,
// %+v prints every entry with its name variant.
func (l List) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, l.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(l.String()))
	case 'v':
		if f.Flag('+') {
			parts := make([]string, len(l))
			for i, e := range l {
				parts[i] = fmt.Sprintf("%T(%q)=%q", e.Name, e.Name, e.Value)
			}
			fmt.Fprint(f, "["+strings.Join(parts, " ")+"]")
			return
		}
		fmt.Fprint(f, l.String())
	default:
		type hideMethods List
		fmt.Fprintf(f, fmt.FormatString(f, verb), hideMethods(l))
	}
}

// Clone returns a copy of the list.
func (l List) Clone() List { return slices.Clone(l) }

// Equal reports whether both lists hold equal entries in the same order.
func (l List) Equal(other List) bool { return slices.EqualFunc(l, other, Entry.Equal) }

// Values returns values of all entries named n, in order.
func (l List) Values(n Name) []string {
	var vals []string
	for _, e := range l {
		if nameEqual(e.Name, n) {
			vals = append(vals, e.Value)
		}
	}
	return vals
}

// ParseLines parses "Name: value" lines as produced by [List.Render].
// Empty lines are skipped, a trailing CR is dropped and names are parsed
// with [ParseName]. Names and values are not validated,
// encoding reports entries the format can't represent.
func ParseLines[T ~string | ~[]byte](text T) (List, error) {
	var list List
	for i, line := range strings.Split(string(text), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if util.TrimSP(line) == "" {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidLine, "line %d: %q", i+1, util.Ellipsis(line, 32)))
		}
		list = append(list, Entry{
			Name:  ParseName(util.TrimSP(name)),
			Value: strings.TrimLeft(value, " \t"),
		})
	}
	return list, nil
}
