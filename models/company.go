package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is the billing entity that owns invoices. Ownership of a
// company (via UserID) is the authorization boundary for every
// invoice and reminder operation.
type Company struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
