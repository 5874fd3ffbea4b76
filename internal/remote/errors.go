package remote

import "errors"

var (
	// ErrUnavailable indicates the chat backend is unreachable.
	ErrUnavailable = errors.New("chat backend unavailable")

	// ErrTimeout indicates the chat request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("chat retry attempts exhausted")
)
