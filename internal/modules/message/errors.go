package message

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("message not found")
	ErrForbidden  = errors.New("forbidden")
)
