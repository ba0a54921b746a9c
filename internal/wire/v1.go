package wire

import "braces.dev/errtrace"

// V1NameMaxByte is the largest name byte of the legacy layout that
// still carries a literal name length; larger bytes carry IDs.
const V1NameMaxByte byte = 0b0100_1111

// V1Layout is the legacy layout: one byte names or IDs
// and fixed two byte value lengths.
type V1Layout struct {
	Alphabet
	// IDMinByte is the name byte of ID 0.
	IDMinByte byte
	// Count is the number of bytes in the alphabet.
	Count uint
	// MaxNameLen is the longest literal name.
	MaxNameLen uint
	// MaxID is the largest header ID.
	MaxID uint
	// MaxValueLen is the largest value length.
	MaxValueLen uint
}

// NewV1Layout derives the legacy layout for the alphabet,
// splitting name bytes at nameMaxByte.
func NewV1Layout(a Alphabet, nameMaxByte byte) V1Layout {
	idMin := nameMaxByte + 1
	n := uint(a.Max-a.Min) + 1
	return V1Layout{
		Alphabet:    a,
		IDMinByte:   idMin,
		Count:       n,
		MaxNameLen:  uint(idMin - a.Min),
		MaxID:       uint(a.Max - idMin),
		MaxValueLen: n*n - 1,
	}
}

// V1 is the legacy layout over the [Safe] alphabet.
var V1 = NewV1Layout(Safe, V1NameMaxByte)

// AppendLiteral appends the name length byte and the name.
func (l V1Layout) AppendLiteral(dst []byte, name string) []byte {
	dst = append(dst, l.Min+byte(len(name)-1))
	return append(dst, name...)
}

// AppendID appends the single ID byte.
func (l V1Layout) AppendID(dst []byte, id uint) []byte {
	return append(dst, l.IDMinByte+byte(id))
}

// AppendLength appends n as two digits in base Count, low digit first.
func (l V1Layout) AppendLength(dst []byte, n uint) []byte {
	return append(dst, l.Min+byte(n%l.Count), l.Min+byte(n/l.Count))
}

// ReadName consumes a name field.
func (l V1Layout) ReadName(c *Cursor) (lit []byte, id uint, isID bool, err error) {
	b, err := c.Byte(l.Alphabet, ErrTruncatedName)
	if err != nil {
		return nil, 0, false, errtrace.Wrap(err)
	}
	if b >= l.IDMinByte {
		return nil, uint(b - l.IDMinByte), true, nil
	}
	lit, err = c.Take(int(b-l.Min)+1, ErrTruncatedName)
	if err != nil {
		return nil, 0, false, errtrace.Wrap(err)
	}
	return lit, 0, false, nil
}

// ReadLength consumes a length field.
func (l V1Layout) ReadLength(c *Cursor) (uint, error) {
	lo, err := c.Byte(l.Alphabet, ErrTruncatedValue)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	hi, err := c.Byte(l.Alphabet, ErrTruncatedValue)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return uint(hi-l.Min)*l.Count + uint(lo-l.Min), nil
}
