package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidDate  = errors.New("invalid appointment date")
	ErrEmptyPatch   = errors.New("nothing to update")
	ErrInvalidQuery = errors.New("invalid filter")
)
