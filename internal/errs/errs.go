package errs

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies every failure the core can return. Callers branch on the
// kind; Message stays human-readable for display.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindInvalidPin
	KindLimitViolation
	KindInsufficientBalance
	KindAlreadyProcessed
	KindExpired
	KindNotAuthorized
	KindBlocked
	KindOverflow
	KindTooManyAttempts
	KindTimeout
)

// Error is the single error type returned by services and repositories.
type Error struct {
	Kind    Kind
	Message string

	// RetryAfter is set for KindTooManyAttempts and KindTimeout.
	RetryAfter time.Duration

	// Warnings carries the fraud engine's findings for KindBlocked.
	Warnings []string

	cause error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is reports kind equality, so errors.Is(err, &Error{Kind: KindExpired}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err (or anything it wraps) carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error     { return newf(KindNotFound, format, args...) }
func InvalidInput(format string, args ...any) *Error { return newf(KindInvalidInput, format, args...) }
func LimitViolation(format string, args ...any) *Error {
	return newf(KindLimitViolation, format, args...)
}
func AlreadyProcessed(format string, args ...any) *Error {
	return newf(KindAlreadyProcessed, format, args...)
}
func Expired(format string, args ...any) *Error { return newf(KindExpired, format, args...) }
func NotAuthorized(format string, args ...any) *Error {
	return newf(KindNotAuthorized, format, args...)
}
func Overflow(format string, args ...any) *Error { return newf(KindOverflow, format, args...) }

// InvalidPin deliberately carries a fixed message: callers must not learn
// whether the digits were wrong or the format check failed upstream.
func InvalidPin() *Error { return newf(KindInvalidPin, "Invalid PIN") }

// InsufficientBalance reports how much was available and how much was needed.
func InsufficientBalance(have, need int64) *Error {
	return newf(KindInsufficientBalance, "Insufficient balance. Have: %d, Need: %d", have, need)
}

// Blocked is returned when the fraud engine refuses a transaction.
func Blocked(warnings []string) *Error {
	e := newf(KindBlocked, "Transaction blocked by fraud check")
	e.Warnings = warnings
	return e
}

// TooManyAttempts is returned while a PIN lockout window is in effect.
func TooManyAttempts(retryAfter time.Duration) *Error {
	e := newf(KindTooManyAttempts, "Too many attempts. Try again in %d seconds", int64(retryAfter.Seconds()))
	e.RetryAfter = retryAfter
	return e
}

// Timeout wraps an external call that exceeded its deadline; retryable.
func Timeout(operation string) *Error {
	return newf(KindTimeout, "%s timed out, try again", operation)
}

// Internal wraps an unexpected failure. The cause is kept for logs; the
// message shown to users is generic.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "service unavailable, try again", cause: cause}
}

// UserMessage sanitizes err for end users: balance/limit/validation messages
// pass through verbatim because they are actionable, everything unexpected
// collapses to a generic category.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "service unavailable, try again"
	}
	switch e.Kind {
	case KindInternal:
		return "service unavailable, try again"
	case KindNotAuthorized:
		return "unauthorized"
	case KindTooManyAttempts:
		return e.Message
	default:
		return e.Message
	}
}
