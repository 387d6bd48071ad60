package omdb

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind categorizes an OMDb client error.
type Kind string

const (
	KindConfiguration Kind = "CONFIG_ERROR"
	KindValidation    Kind = "VALIDATION_ERROR"
	KindProvider      Kind = "PROVIDER_ERROR"
	KindNetwork       Kind = "NETWORK_ERROR"
)

// Error is returned by every Client operation.
type Error struct {
	Kind    Kind   // Error category
	Op      string // Operation that failed, e.g. "search"
	Message string // Human-readable message; provider text verbatim for KindProvider
	Cause   error  // Underlying error

	timeout bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		if msg == "" {
			msg = e.Cause.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Cause)
		}
	}
	if e.Op != "" {
		return fmt.Sprintf("omdb %s: [%s] %s", e.Op, e.Kind, msg)
	}
	return fmt.Sprintf("omdb: [%s] %s", e.Kind, msg)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same kind, so errors.Is(err, ErrProvider) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Timeout reports whether a network error was caused by a deadline.
func (e *Error) Timeout() bool {
	return e.timeout
}

// Common error instances for comparison
var (
	ErrConfiguration = &Error{Kind: KindConfiguration, Message: "configuration error"}
	ErrValidation    = &Error{Kind: KindValidation, Message: "validation error"}
	ErrProvider      = &Error{Kind: KindProvider, Message: "provider error"}
	ErrNetwork       = &Error{Kind: KindNetwork, Message: "network error"}
)

// Provider messages that mean the requested title does not exist.
var notFoundMessages = map[string]bool{
	"Movie not found!":   true,
	"Series not found!":  true,
	"Episode not found!": true,
	"Incorrect IMDb ID.": true,
}

// IsNotFound reports whether err is a provider error for a missing title.
func IsNotFound(err error) bool {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindProvider {
		return false
	}
	return notFoundMessages[e.Message]
}

// IsTimeout reports whether err is a network error caused by a deadline.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNetwork && e.timeout
}

func configError(message string) *Error {
	return &Error{Kind: KindConfiguration, Op: "new", Message: message}
}

func validationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

func providerError(op, message string) *Error {
	return &Error{Kind: KindProvider, Op: op, Message: message}
}

func networkError(op, message string, cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Op:      op,
		Message: message,
		Cause:   cause,
		timeout: isTimeout(cause),
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
