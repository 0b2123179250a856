package card

import "errors"

// Service errors
var (
	ErrCardNotFound = errors.New("card not found")
)
