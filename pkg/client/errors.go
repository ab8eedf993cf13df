package client

import (
	"errors"
	"fmt"
)

const errorPrefix = "oauthrest: "

// ErrorKind classifies the errors produced by the client itself.
// Transport failures are never wrapped in an Error.
type ErrorKind int

const (
	// KindMissingCredential means a resource call was made without an access token.
	KindMissingCredential ErrorKind = iota + 1
	// KindInvalidArgument means a precondition on the call arguments failed.
	KindInvalidArgument
	// KindUnexpectedStatus means the remote answered with a status other than 200.
	KindUnexpectedStatus
)

// String makes ErrorKind satisfy the fmt.Stringer interface.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "MissingCredential"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindUnexpectedStatus:
		return "UnexpectedStatus"
	default:
		return "Unknown"
	}
}

// Error is the tagged error returned for precondition failures and
// non-200 responses.
type Error struct {
	Kind ErrorKind

	// StatusCode is set for KindUnexpectedStatus.
	StatusCode int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindUnexpectedStatus {
		return fmt.Sprintf("%sunexpected status code (%d)", errorPrefix, e.StatusCode)
	}
	return errorPrefix + e.Message
}

// Is reports whether target is an *Error of the same kind. A target with a
// non-zero StatusCode additionally has to match the status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

var (
	// ErrMissingCredential is returned by resource calls while no access token is held.
	ErrMissingCredential = &Error{Kind: KindMissingCredential, Message: "invalid API access token"}

	// ErrInvalidArgument matches every argument validation failure.
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}

	// ErrUnexpectedStatus matches every non-200 response.
	ErrUnexpectedStatus = &Error{Kind: KindUnexpectedStatus}
)

func invalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func unexpectedStatus(code int) *Error {
	return &Error{Kind: KindUnexpectedStatus, StatusCode: code}
}

// StatusCode returns the HTTP status carried by an UnexpectedStatus error.
func StatusCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindUnexpectedStatus {
		return e.StatusCode, true
	}
	return 0, false
}
