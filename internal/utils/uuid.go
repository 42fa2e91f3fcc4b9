package utils

import "github.com/google/uuid"

// NewRunID returns a time-ordered identifier used to correlate the log lines
// of a single CLI invocation. It falls back to a random v4 UUID if a v7 one
// cannot be generated.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
