package session

import "errors"

// Common sentinel errors
var (
	ErrUnknownElement      = errors.New("unknown element")
	ErrUnknownEndpoint     = errors.New("unknown connection endpoint")
	ErrSelfConnection      = errors.New("connection endpoints must differ")
	ErrDuplicateConnection = errors.New("connection already exists for pair")
	ErrMissingDirection    = errors.New("unidirectional connection requires a direction")
)

// IsNotFound returns true if the error reports an unknown element or endpoint.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownElement) || errors.Is(err, ErrUnknownEndpoint)
}
