package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never completed (dial/timeout/transport).
	ErrUnavailable = errors.New("server unavailable")
	// ErrNotFound means the requested resource does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("not found")
)

// AuthError is returned by Login and Register on a non-2xx outcome. Message
// is the server-provided text when present, otherwise a generic status-coded
// message.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
}

// StatusError is returned for unexpected non-2xx responses on resource calls.
// Message is the server-provided text when the body carried one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
