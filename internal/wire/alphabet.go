package wire

// Marker is the first byte of every encoded string.
const Marker byte = ';'

// Bounds of the safe byte alphabet used by both format versions.
const (
	MinByte byte = 0b0010_0000
	MaxByte byte = 0b0111_1110
)

// Alphabet is an inclusive range of bytes allowed for structural fields.
type Alphabet struct {
	Min, Max byte
}

// Safe is the alphabet of printable ASCII without DEL.
var Safe = Alphabet{Min: MinByte, Max: MaxByte}

// Contains reports whether b lies within the alphabet.
func (a Alphabet) Contains(b byte) bool { return a.Min <= b && b <= a.Max }
