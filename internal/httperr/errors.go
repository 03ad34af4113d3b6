package httperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a request failure. The HTTP status for each kind is
// assigned in exactly one place (Status), so handlers and services only
// ever deal in kinds.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindInvalidCredentials
	KindMissingToken
	KindInvalidToken
	KindForbidden
	KindUpstream
	KindInternal
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindInvalidCredentials, KindMissingToken, KindInvalidToken:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindNotFound:
		return fiber.StatusNotFound
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// Error is a request failure with a client-safe message. The wrapped
// cause is for logs only and never reaches the response body.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given kind and client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error that carries an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
