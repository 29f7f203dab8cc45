package state

import (
	"github.com/google/uuid"
)

// NewID returns a fresh identifier for an entity or session.
func NewID() string {
	return uuid.NewString()
}
