package wire

// Layout is a wire layout version.
type Layout interface {
	AppendLiteral(dst []byte, name string) []byte
	AppendID(dst []byte, id uint) []byte
	AppendLength(dst []byte, n uint) []byte
	ReadName(c *Cursor) (lit []byte, id uint, isID bool, err error)
	ReadLength(c *Cursor) (uint, error)
}

var (
	_ Layout = V1Layout{}
	_ Layout = V2Layout{}
)
