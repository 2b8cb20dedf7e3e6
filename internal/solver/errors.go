package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for the solver client.
var (
	ErrUnreachable   = errors.New("cannot connect to the solver, is the backend running?")
	ErrInvalidFormat = errors.New("invalid solution format received from server")
)

// Fallback messages for error responses whose body carries no message.
const (
	msgServerError = "server returned an error"
)

// ServerError is returned when the solver answers with a non-success status.
// Error returns the message extracted from the response body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// unreachableError keeps the transport cause while presenting the
// connection message to the user.
type unreachableError struct {
	cause error
}

func (e *unreachableError) Error() string {
	return ErrUnreachable.Error()
}

func (e *unreachableError) Is(target error) bool {
	return target == ErrUnreachable
}

func (e *unreachableError) Unwrap() error {
	return e.cause
}

func statusMessage(status int) string {
	return fmt.Sprintf("solver returned status %d", status)
}

// Error kinds recorded for failed solver calls.
const (
	KindUnreachable   = "unreachable"
	KindServer        = "server"
	KindInvalidFormat = "invalid_format"
	KindOther         = "other"
)

// Kind classifies err into one of the Kind constants. It returns "" for nil.
func Kind(err error) string {
	var se *ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnreachable):
		return KindUnreachable
	case errors.As(err, &se):
		return KindServer
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	default:
		return KindOther
	}
}
