package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrServerReported matches a fatal error described by the remote
	// service in the messages field of its response.
	ErrServerReported = errors.New("server reported an error")

	// ErrRetriesExhausted matches the fatal error returned when the remote
	// service could not be reached and no usable backup exists.
	ErrRetriesExhausted = errors.New("failed to reach doppler servers")
)

// ServerError carries the messages returned by the remote service. Its text
// is the messages joined with ". ".
type ServerError struct {
	StatusCode int
	Messages   []string
}

func (e *ServerError) Error() string {
	return strings.Join(e.Messages, ". ")
}

func (e *ServerError) Is(target error) bool {
	return target == ErrServerReported
}

// ExhaustedError reports that no attempt succeeded and there was no backup
// to fall back to. RateLimited is set when a 429 response ended the attempts
// before the retry budget was spent.
type ExhaustedError struct {
	Retries     int
	RateLimited bool
	// Err is the failure of the last attempt.
	Err error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("DOPPLER: Failed to reach Doppler servers after %d retries...", e.Retries)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrRetriesExhausted
}

// attemptError describes a single failed fetch that may be retried.
type attemptError struct {
	statusCode int
	err        error
}

func (e *attemptError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("unexpected status code %d", e.statusCode)
}

func (e *attemptError) Unwrap() error {
	return e.err
}
