// Package apperr defines the domain error taxonomy. Each error carries
// a kind that maps to an HTTP status at the boundary; anything that is
// not an *apperr.Error is treated as unclassified and rendered as a
// generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error.
type Kind int

const (
	KindUnclassified Kind = iota
	KindNotFound
	KindConflict
)

// Error is a domain error with a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PersonNotFound reports that no person row matches the given id.
func PersonNotFound(id int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Person %d can not be found", id),
	}
}

// UserDoesNotExist reports that no user matches the given identifier,
// which may be either a user id or an email address.
func UserDoesNotExist(identifier string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s does not exist", identifier),
	}
}

// EmailUnavailable reports that the email already belongs to a user.
func EmailUnavailable(email string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("%s is unavailable", email),
	}
}

// From extracts the domain error from err, if there is one.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
