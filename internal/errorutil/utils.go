package errorutil

import "errors"

// IsAny reports whether err matches any of the targets.
func IsAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
