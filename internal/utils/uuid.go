package utils

import "github.com/google/uuid"

// NewRequestID returns a fresh correlation identifier for a single request.
// UUIDv7 is preferred for its time-ordered prefix; on the unlikely failure of
// the v7 generator a random v4 is used instead.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
