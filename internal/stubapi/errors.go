package stubapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrGone         = errors.New("gone")
	ErrInvalid      = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a rejection with a message meant for the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func failure(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// statusOf maps an error to the HTTP status and the message to send.
// Unexpected errors are not echoed to the client.
func statusOf(err error) (int, string) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, "Internal server error"
	}
	switch e.Kind {
	case ErrNotFound:
		return http.StatusNotFound, e.Message
	case ErrConflict:
		return http.StatusConflict, e.Message
	case ErrForbidden:
		return http.StatusForbidden, e.Message
	case ErrGone:
		return http.StatusGone, e.Message
	case ErrInvalid:
		return http.StatusBadRequest, e.Message
	case ErrUnauthorized:
		return http.StatusUnauthorized, e.Message
	default:
		return http.StatusInternalServerError, e.Message
	}
}
