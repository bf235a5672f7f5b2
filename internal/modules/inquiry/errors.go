package inquiry

import (
	"errors"

	"tattooparlor/internal/pkg/validator"
)

var (
	ErrInvalidStatus = errors.New("invalid inquiry status")
	ErrInvalidEmail  = validator.ErrInvalidEmail
)
