package client

import "errors"

// Error taxonomy of the facade. NotFound is a normal outcome; callers
// substitute sample content on the read path. Unavailable covers both
// "never configured" and "configured but unreachable".
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("post not found")
	ErrUnavailable  = errors.New("backend not available")
	ErrNotSupported = errors.New("operation not supported by this backend")
	ErrInternal     = errors.New("backend request failed")
)
