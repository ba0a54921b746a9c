package wire

import "braces.dev/errtrace"

// V2Layout is the tagged layout: two byte names or IDs and one to three
// byte value lengths with a continuation flag in bit 1.
type V2Layout struct {
	Alphabet
	// Range is the distance between the alphabet bounds.
	Range uint
	// MaxNameLen is the longest literal name.
	MaxNameLen uint
	// MaxID is the largest header ID.
	MaxID uint
	// TaggedMax is the largest digit a tagged byte carries.
	TaggedMax uint
	// OneMax and TwoMax are the largest value lengths written with one and two bytes.
	OneMax, TwoMax uint
	// MaxValueLen is the largest value length, written with three bytes.
	MaxValueLen uint
}

// NewV2Layout derives the tagged layout for the alphabet.
func NewV2Layout(a Alphabet) V2Layout {
	r := uint(a.Max - a.Min)
	tagged := (r>>1)&0b1111_1110 | r&1
	one := tagged
	// Each tier starts right after the previous one ends,
	// so no length has two encodings.
	two := (one + 1) + (tagged*(tagged+1) + tagged)
	return V2Layout{
		Alphabet:   a,
		Range:      r,
		MaxNameLen: r + 1,
		// The first digit can't be Min, it escapes literal names.
		MaxID:       uint(a.Max-(a.Min+1))*(r+1) + r,
		TaggedMax:   tagged,
		OneMax:      one,
		TwoMax:      two,
		MaxValueLen: (two + 1) + (tagged*(tagged+1)*(r+1) + tagged*(r+1) + r),
	}
}

// V2 is the tagged layout over the [Safe] alphabet.
var V2 = NewV2Layout(Safe)

// Tag packs a digit and the continuation flag into a tagged byte value.
// Bit 0 keeps the lowest digit bit, bit 1 is the flag, the rest of the digit
// is shifted one bit up.
func Tag(v uint, more bool) uint {
	t := (v<<1)&0b1111_1100 | v&1
	if more {
		t |= 0b10
	}
	return t
}

// Untag reverses [Tag].
func Untag(t uint) (v uint, more bool) {
	return (t>>1)&0b1111_1110 | t&1, t&0b10 != 0
}

// AppendLiteral appends the escape byte, the name length and the name.
func (l V2Layout) AppendLiteral(dst []byte, name string) []byte {
	dst = append(dst, l.Min, l.Min+byte(len(name)-1))
	return append(dst, name...)
}

// AppendID appends the ID as a two digit number in base Range+1.
func (l V2Layout) AppendID(dst []byte, id uint) []byte {
	base := l.Range + 1
	return append(dst, (l.Min+1)+byte(id/base), l.Min+byte(id%base))
}

// LengthSize returns the number of bytes AppendLength writes for n.
func (l V2Layout) LengthSize(n uint) int {
	switch {
	case n <= l.OneMax:
		return 1
	case n <= l.TwoMax:
		return 2
	default:
		return 3
	}
}

// AppendLength appends the value length n.
func (l V2Layout) AppendLength(dst []byte, n uint) []byte {
	tbase := l.TaggedMax + 1
	base := l.Range + 1
	switch {
	case n <= l.OneMax:
		return append(dst, l.Min+byte(Tag(n, false)))
	case n <= l.TwoMax:
		m := n - (l.OneMax + 1)
		return append(dst,
			l.Min+byte(Tag(m/tbase, true)),
			l.Min+byte(Tag(m%tbase, false)),
		)
	default:
		m := n - (l.TwoMax + 1)
		return append(dst,
			l.Min+byte(Tag(m/(base*tbase), true)),
			l.Min+byte(Tag(m/base%tbase, true)),
			l.Min+byte(m%base),
		)
	}
}

// IsEscape reports whether the first byte of a name field starts a literal name.
func (l V2Layout) IsEscape(first byte) bool { return first == l.Min }

// NameLen returns the literal name length carried by the second name byte.
func (l V2Layout) NameLen(second byte) int { return int(second-l.Min) + 1 }

// ID returns the header ID carried by both name bytes.
func (l V2Layout) ID(first, second byte) uint {
	return uint(first-(l.Min+1))*(l.Range+1) + uint(second-l.Min)
}

// ReadNameBytes consumes the two structural bytes of a name field.
func (l V2Layout) ReadNameBytes(c *Cursor) (first, second byte, err error) {
	if first, err = c.Byte(l.Alphabet, ErrTruncatedName); err != nil {
		return 0, 0, errtrace.Wrap(err)
	}
	if second, err = c.Byte(l.Alphabet, ErrTruncatedName); err != nil {
		return 0, 0, errtrace.Wrap(err)
	}
	return first, second, nil
}

// ReadName consumes a name field.
// It returns either the literal name bytes or the header ID with isID set.
func (l V2Layout) ReadName(c *Cursor) (lit []byte, id uint, isID bool, err error) {
	first, second, err := l.ReadNameBytes(c)
	if err != nil {
		return nil, 0, false, errtrace.Wrap(err)
	}
	if !l.IsEscape(first) {
		return nil, l.ID(first, second), true, nil
	}
	lit, err = c.Take(l.NameLen(second), ErrTruncatedName)
	if err != nil {
		return nil, 0, false, errtrace.Wrap(err)
	}
	return lit, 0, false, nil
}

// ReadTagged consumes a tagged length byte.
// The byte MIN+93 is never written, it carries digit TaggedMax+1 with
// the flag cleared and is read as such.
func (l V2Layout) ReadTagged(c *Cursor) (digit uint, more bool, err error) {
	b, err := c.Byte(l.Alphabet, ErrTruncatedValue)
	if err != nil {
		return 0, false, errtrace.Wrap(err)
	}
	digit, more = Untag(uint(b - l.Min))
	return digit, more, nil
}

// ReadPlain consumes the untagged last length byte.
func (l V2Layout) ReadPlain(c *Cursor) (uint, error) {
	b, err := c.Byte(l.Alphabet, ErrTruncatedValue)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return uint(b - l.Min), nil
}

// Length2 returns the value length of a two byte length field.
func (l V2Layout) Length2(d0, d1 uint) uint {
	return (l.OneMax + 1) + (d0*(l.TaggedMax+1) + d1)
}

// Length3 returns the value length of a three byte length field.
func (l V2Layout) Length3(d0, d1, d2 uint) uint {
	base := l.Range + 1
	return (l.TwoMax + 1) + (d0*((l.TaggedMax+1)*base) + d1*base + d2)
}

// ReadLength consumes a length field.
func (l V2Layout) ReadLength(c *Cursor) (uint, error) {
	d0, more, err := l.ReadTagged(c)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	if !more {
		return d0, nil
	}
	d1, more, err := l.ReadTagged(c)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	if !more {
		return l.Length2(d0, d1), nil
	}
	d2, err := l.ReadPlain(c)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return l.Length3(d0, d1, d2), nil
}
