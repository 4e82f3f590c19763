package backend

import (
	"github.com/pkg/errors"
)

// TransportError means the backend could not be reached or answered with
// something that is not a JSON envelope.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "backend " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a logical failure reported by the backend with success=false.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "backend " + e.Op + ": request failed"
	}
	return e.Message
}

// IsTransport reports whether err came from a failed round trip
func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// AsAPIError extracts the backend's message when err is a logical failure
func AsAPIError(err error) (*APIError, bool) {
	var a *APIError
	ok := errors.As(err, &a)
	return a, ok
}
