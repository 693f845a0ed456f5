package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceFile is the archive record for an uploaded invoice PDF. The
// bytes live in storage under StoragePath; the row is bookkeeping only.
type InvoiceFile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
