package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing row for an expected 1:1 relation.
	ErrNotFound = errors.New("not found")
	// ErrUnknownPlatform signals a persisted platform tag outside the
	// supported set. This means corrupted or tampered data, not bad input.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrFetch signals a failed remote platform lookup (network, decode,
	// or an upstream-reported failure).
	ErrFetch = errors.New("fetch failed")
	// ErrStorage signals an underlying database read/write failure.
	ErrStorage = errors.New("storage error")
	// ErrConflict signals an attempt to register an already-tracked user.
	ErrConflict = errors.New("conflict")
)

type AppError struct {
	Err     error  // sentinel for errors.Is checks
	Message string // human-readable error message
	Cause   error  // underlying error, if any
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func UnknownPlatform(tag string) *AppError {
	return &AppError{
		Err:     ErrUnknownPlatform,
		Message: fmt.Sprintf("unknown platform %q", tag),
	}
}

func FetchFailed(platform, login string, cause error) *AppError {
	return &AppError{
		Err:     ErrFetch,
		Message: fmt.Sprintf("fetching %s profile for %q", platform, login),
		Cause:   cause,
	}
}

func Storage(op string, cause error) *AppError {
	return &AppError{
		Err:     ErrStorage,
		Message: fmt.Sprintf("database error during %s", op),
		Cause:   cause,
	}
}

func Conflict(username string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("user %q is already tracked", username),
	}
}
