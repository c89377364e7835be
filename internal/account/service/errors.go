package service

import (
	"errors"
	"fmt"
)

// Kind classifies workflow failures. The HTTP layer maps each kind to a status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
	KindToken
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindToken:
		return "token"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// Error is returned by every workflow for expected failures. Message is safe
// to show to the caller; Err carries the cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// internal wraps an unexpected failure behind the generic message.
func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// KindOf returns the kind of err, KindInternal for anything untyped.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message of err.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return MsgInternal
}
