package repository

import (
	"context"

	"duebot-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReminderRepository handles database operations for reminders
type ReminderRepository struct {
	db *pgxpool.Pool
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a draft reminder. SentAt stays NULL here; only a
// delivery subsystem would ever set it.
func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	query := `
		INSERT INTO reminders (
			invoice_id, subject, body, tone, sent_at
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		reminder.InvoiceID,
		reminder.Subject,
		reminder.Body,
		reminder.Tone,
		reminder.SentAt,
	).Scan(&reminder.ID, &reminder.CreatedAt)

	return err
}

// ListByInvoiceID retrieves all reminders for an invoice, newest first
func (r *ReminderRepository) ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*models.Reminder, error) {
	query := `
		SELECT id, invoice_id, subject, body, tone, sent_at, created_at
		FROM reminders
		WHERE invoice_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		err := rows.Scan(
			&reminder.ID,
			&reminder.InvoiceID,
			&reminder.Subject,
			&reminder.Body,
			&reminder.Tone,
			&reminder.SentAt,
			&reminder.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}
