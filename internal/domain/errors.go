package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so transport layers can map it to a status
// code without string matching.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindAccessDenied    ErrorKind = "access_denied"
	KindNotOwner        ErrorKind = "not_owner"
	KindUnavailable     ErrorKind = "unavailable"
	KindAlreadyApproved ErrorKind = "already_approved"
	KindValidation      ErrorKind = "validation"
	KindAlreadyExists   ErrorKind = "already_exists"
	KindNotBooked       ErrorKind = "not_booked"
)

// Error is a tagged domain failure: a kind plus a caller-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func AccessDeniedf(format string, args ...any) *Error {
	return newError(KindAccessDenied, format, args...)
}

func NotOwnerf(format string, args ...any) *Error {
	return newError(KindNotOwner, format, args...)
}

func Unavailablef(format string, args ...any) *Error {
	return newError(KindUnavailable, format, args...)
}

func AlreadyApprovedf(format string, args ...any) *Error {
	return newError(KindAlreadyApproved, format, args...)
}

func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return newError(KindAlreadyExists, format, args...)
}

func NotBookedf(format string, args ...any) *Error {
	return newError(KindNotBooked, format, args...)
}

// KindOf extracts the kind from err, or "" when err is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
