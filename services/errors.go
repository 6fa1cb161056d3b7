package services

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable, machine-checkable classification of a service
// failure. Handlers map kinds to HTTP statuses; callers branch on kinds.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindForbidden          ErrorKind = "forbidden"
	KindInvalidInput       ErrorKind = "invalid_input"
	KindAccountInactive    ErrorKind = "account_inactive"
	KindAccountBlacklisted ErrorKind = "account_blacklisted"
	KindVIPRequired        ErrorKind = "vip_required"
	KindInsufficientFunds  ErrorKind = "insufficient_funds"
	KindIllegalTransition  ErrorKind = "illegal_transition"
)

// Error carries a kind plus a human-readable message. All service failures
// are recoverable at the caller; none should crash the process.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, or "" for non-service errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a service error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
