package api

import "errors"

// Common remote service errors
var (
	// ErrTaskNotFound is returned when the service reports 404 for a task
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnauthorized is returned when the credential is missing or rejected
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a structured failure payload from the remote service. Message is
// the human-readable text the service attached, when it attached one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "remote service error"
}

// Unwrap maps well-known status codes onto sentinel errors so callers can
// use errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case 404:
		return ErrTaskNotFound
	case 401:
		return ErrUnauthorized
	}
	return nil
}

// Message extracts the human-readable message from a remote failure, or
// returns fallback when the failure carries none (network errors, opaque
// server responses).
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
