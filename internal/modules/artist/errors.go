package artist

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidSchedule = errors.New("invalid availability schedule")
	ErrValidation      = errors.New("validation error")
)
