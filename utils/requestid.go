package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a unique identifier for tagging a single HTTP request
func NewRequestID() string {
	return uuid.New().String()
}
