package repository

import (
	"context"

	"duebot-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WaitlistRepository handles database operations for waitlist signups
type WaitlistRepository struct {
	db *pgxpool.Pool
}

// NewWaitlistRepository creates a new waitlist repository
func NewWaitlistRepository(db *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

// Create inserts a waitlist entry. Returns ErrDuplicateEmail if the
// address is already on the list.
func (r *WaitlistRepository) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist (email)
		VALUES ($1)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, entry.Email).Scan(&entry.ID, &entry.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}

	return err
}
