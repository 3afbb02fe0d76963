package nn

import "errors"

// Common errors.
var (
	ErrDuplicateParam = errors.New("duplicate parameter name")
	ErrUnknownParam   = errors.New("unknown parameter")
	ErrEmptyName      = errors.New("empty parameter name")
)
