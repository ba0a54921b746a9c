package wire

import "github.com/ghettovoice/che/internal/errorutil"

// Error is a codec error.
// See [errorutil.Error].
type Error = errorutil.Error

// Encode errors.
const (
	ErrNameEmpty       Error = "empty header name"
	ErrNameTooLong     Error = "header name too long"
	ErrIDTooLarge      Error = "header id too large"
	ErrValueTooLong    Error = "header value too long"
	ErrInvalidNameType Error = "invalid header name type"
)

// Decode errors.
const (
	ErrEmptyInput     Error = "empty input"
	ErrBadMarker      Error = "bad marker"
	ErrByteOutOfRange Error = "byte out of range"
	ErrTruncatedName  Error = "truncated header name"
	ErrTruncatedValue Error = "truncated header value"
)
