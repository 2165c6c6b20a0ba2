package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a stable, machine-readable classification of a failure.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	KindUnavailable     ErrorKind = "unavailable"
	KindInternal        ErrorKind = "internal"
)

// Error is the structured error carried across service and client boundaries.
// Detail is human-readable and safe to show to an administrator.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// E builds an *Error of the given kind.
func E(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap builds an *Error of the given kind around err.
func Wrap(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func (e *Error) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind and detail, so sentinels compare with errors.Is
// even after being wrapped with fmt.Errorf.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Detail == t.Detail
}

// Sentinel errors for account operations.
var (
	ErrNotFound       = E(KindNotFound, "not found")
	ErrDuplicateEmail = E(KindConflict, "email already in use")
	ErrInvalidEmail   = E(KindInvalidArgument, "invalid email format")
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the human-readable detail of the first *Error in err's chain.
// Errors without one yield a generic message so infrastructure text is not surfaced.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Detail != "" {
		return e.Detail
	}
	return "internal error"
}
