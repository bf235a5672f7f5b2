package review

import "errors"

var ErrInvalidRating = errors.New("star rating must be between 1 and 5")
