package profile

import "errors"

var (
	ErrValidation = errors.New("invalid profile fields")
	ErrNotFound   = errors.New("performer not found")
)
