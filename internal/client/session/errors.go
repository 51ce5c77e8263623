package session

import (
	"errors"

	"github.com/dmitrijs2005/recruit/internal/client/api"
)

// ErrSuperseded means a newer session operation started before this one finished.
var ErrSuperseded = errors.New("superseded by a newer session operation")

// Fallback messages used when the backend gives no message of its own.
const (
	msgLoginFailed    = "login failed"
	msgRegisterFailed = "registration failed"
	msgUploadFailed   = "resume upload failed"
	msgConfirmFailed  = "registration confirmation failed"
)

// Error is the user-facing failure of a store operation. Its text is the
// backend's message when there is one, otherwise a per-operation fallback.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func newError(op, fallback string, err error) *Error {
	msg := api.Message(err)
	if msg == "" {
		msg = fallback
	}
	return &Error{Op: op, Message: msg, Err: err}
}
