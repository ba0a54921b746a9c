package che

import (
	"strconv"
	"strings"
)

// Name is a header name: either a [Literal] or an [ID].
// No other implementations exist; a nil Name is rejected by the encoder.
type Name interface {
	// String returns the literal name or the ID in the "#<id>" form.
	String() string
	isName()
}

// Literal is a header name written out in full.
type Literal string

func (Literal) isName() {}

func (n Literal) String() string { return string(n) }

// ID is a numeric header identifier.
type ID uint

func (ID) isName() {}

func (id ID) String() string { return "#" + strconv.FormatUint(uint64(id), 10) }

// ParseName parses the [Name.String] form back into a Name.
// "#" followed by decimal digits yields an [ID], anything else a [Literal].
func ParseName(s string) Name {
	if digits, ok := strings.CutPrefix(s, "#"); ok && digits != "" {
		if v, err := strconv.ParseUint(digits, 10, 32); err == nil {
			return ID(v)
		}
	}
	return Literal(s)
}

func nameEqual(a, b Name) bool {
	switch a := a.(type) {
	case Literal:
		b, ok := b.(Literal)
		return ok && a == b
	case ID:
		b, ok := b.(ID)
		return ok && a == b
	default:
		return a == nil && b == nil
	}
}
