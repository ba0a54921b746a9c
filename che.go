package che

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/che/internal/constraints"
	"github.com/ghettovoice/che/internal/util"
)

// Encode encodes the list with the [V2] format.
func Encode(list List) ([]byte, error) {
	return errtrace.Wrap2(V2.Encode(list))
}

// Append appends the list encoded with the [V2] format to dst.
// On error dst is returned unchanged.
func Append(dst []byte, list List) ([]byte, error) {
	return errtrace.Wrap2(V2.Append(dst, list))
}

// EncodeTo encodes the list with the [V2] format and writes it to w.
// Nothing is written if the list can't be encoded.
func EncodeTo(w io.Writer, list List) (num int, err error) {
	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	data, err := V2.Append(buf.AvailableBuffer(), list)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	buf.Write(data)
	return errtrace.Wrap2(w.Write(buf.Bytes()))
}

// Decode decodes data (string or []byte) encoded with the [V2] format.
func Decode[T constraints.Byteseq](data T) (List, error) {
	return errtrace.Wrap2(V2.Decode([]byte(data)))
}

// Validate checks every entry against the [V2] limits and reports all problems.
func Validate(list List) error {
	return errtrace.Wrap(V2.Limits().Validate(list))
}
