// Package errors defines domain error types shared across services.
package errors

import "fmt"

// DomainError is an application-level error with a stable code that
// handlers can map onto HTTP responses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Validation builds a field validation error.
func Validation(field, message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: fmt.Sprintf("%s %s", field, message),
	}
}
