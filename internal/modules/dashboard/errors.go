package dashboard

import (
	"errors"

	"tattooparlor/internal/pkg/validator"
)

var (
	ErrEmptyPatch      = errors.New("nothing to update")
	ErrNoSession       = errors.New("no session")
	ErrInvalidUsername = errors.New("username must be 3-50 characters")
	ErrInvalidEmail    = validator.ErrInvalidEmail
)
