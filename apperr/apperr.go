// Package apperr carries the error kinds the API distinguishes. Controllers
// and services raise these at the point of detection; the error-handler
// middleware maps them to HTTP statuses at the response boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps an unexpected store or infrastructure failure. Its cause is
// logged server-side and never shown to the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// StatusOf maps an error to the HTTP status it should produce. Errors that
// are not *Error count as internal.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		case KindConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
