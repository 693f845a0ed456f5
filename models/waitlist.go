package models

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry represents a pre-launch signup
type WaitlistEntry struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
