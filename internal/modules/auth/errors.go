package auth

import (
	"errors"

	"tattooparlor/internal/pkg/validator"
)

var (
	ErrWeakPassword     = errors.New("password does not meet the requirements")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidUserType  = errors.New("invalid user type")
	ErrMissingToken     = errors.New("invalid or missing reset token")
	ErrInvalidUsername  = errors.New("username must be 2-64 characters")
	ErrInvalidEmail     = validator.ErrInvalidEmail
)
