package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("booking or property not found")
	ErrForbidden    = errors.New("forbidden")
	ErrNotAvailable = errors.New("property not available for the selected dates")
)
