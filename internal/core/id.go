package core

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a UUID v7 (time-ordered).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// NewState returns an opaque OAuth state token.
func NewState() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
