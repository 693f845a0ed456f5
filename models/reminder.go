package models

import (
	"time"

	"github.com/google/uuid"
)

// Tone controls the register of generated reminder text
type Tone string

const (
	ToneFriendly Tone = "friendly"
	ToneNeutral  Tone = "neutral"
	ToneFirm     Tone = "firm"
)

// Valid reports whether t is one of the three supported tones
func (t Tone) Valid() bool {
	return t == ToneFriendly || t == ToneNeutral || t == ToneFirm
}

// Reminder represents a generated payment-reminder email. SentAt is
// nil while the reminder is a draft; a future delivery subsystem sets
// it on dispatch. This core only ever produces drafts.
type Reminder struct {
	ID        uuid.UUID  `json:"id"`
	InvoiceID uuid.UUID  `json:"invoice_id"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Tone      Tone       `json:"tone"`
	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
}
