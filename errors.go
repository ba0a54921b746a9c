package che

import (
	"github.com/ghettovoice/che/internal/errorutil"
	"github.com/ghettovoice/che/internal/wire"
)

// Error represents a CHE error.
// See [errorutil.Error].
type Error = errorutil.Error

// Encode errors.
const (
	// ErrNameEmpty is returned for a zero length literal name.
	ErrNameEmpty = wire.ErrNameEmpty
	// ErrNameTooLong is returned for a literal name longer than [Limits.MaxNameLen].
	ErrNameTooLong = wire.ErrNameTooLong
	// ErrIDTooLarge is returned for an ID above [Limits.MaxID].
	ErrIDTooLarge = wire.ErrIDTooLarge
	// ErrValueTooLong is returned for a value longer than [Limits.MaxValueLen].
	ErrValueTooLong = wire.ErrValueTooLong
	// ErrInvalidNameType is returned for a name that is neither [Literal] nor [ID].
	ErrInvalidNameType = wire.ErrInvalidNameType
)

// Decode errors.
const (
	ErrEmptyInput     = wire.ErrEmptyInput
	ErrBadMarker      = wire.ErrBadMarker
	ErrByteOutOfRange = wire.ErrByteOutOfRange
	ErrTruncatedName  = wire.ErrTruncatedName
	ErrTruncatedValue = wire.ErrTruncatedValue
)

// ErrInvalidLine is returned by [ParseLines] for a line without a colon.
const ErrInvalidLine Error = "invalid header line"

// IsEncodeError reports whether err is one of the encode errors.
func IsEncodeError(err error) bool {
	return errorutil.IsAny(err,
		ErrNameEmpty,
		ErrNameTooLong,
		ErrIDTooLarge,
		ErrValueTooLong,
		ErrInvalidNameType,
	)
}

// IsDecodeError reports whether err is one of the decode errors.
func IsDecodeError(err error) bool {
	return errorutil.IsAny(err,
		ErrEmptyInput,
		ErrBadMarker,
		ErrByteOutOfRange,
		ErrTruncatedName,
		ErrTruncatedValue,
	)
}
