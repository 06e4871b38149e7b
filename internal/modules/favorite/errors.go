package favorite

import "errors"

var (
	ErrNotFound      = errors.New("favorite not found")
	ErrAlreadyExists = errors.New("property already in favorites")
	ErrNoProperty    = errors.New("property not found")
)
