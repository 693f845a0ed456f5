package repository

import (
	"context"
	"errors"

	"duebot-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create creates a new invoice
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (
			company_id, invoice_number, customer_name, customer_email,
			amount, currency, issue_date, due_date, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		invoice.CompanyID,
		invoice.InvoiceNumber,
		invoice.CustomerName,
		invoice.CustomerEmail,
		invoice.Amount,
		invoice.Currency,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Status,
	).Scan(&invoice.ID, &invoice.CreatedAt)

	return err
}

// GetByIDWithOwner retrieves an invoice joined with its owning
// company's user ID. The second return value is the owner, used for
// the authorization check before any model call is made.
func (r *InvoiceRepository) GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*models.Invoice, uuid.UUID, error) {
	invoice := &models.Invoice{}
	var ownerID uuid.UUID
	query := `
		SELECT i.id, i.company_id, i.invoice_number, i.customer_name, i.customer_email,
			i.amount, i.currency, i.issue_date, i.due_date, i.status, i.created_at,
			c.user_id
		FROM invoices i
		JOIN companies c ON c.id = i.company_id
		WHERE i.id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.CompanyID,
		&invoice.InvoiceNumber,
		&invoice.CustomerName,
		&invoice.CustomerEmail,
		&invoice.Amount,
		&invoice.Currency,
		&invoice.IssueDate,
		&invoice.DueDate,
		&invoice.Status,
		&invoice.CreatedAt,
		&ownerID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, uuid.Nil, ErrNotFound
		}
		return nil, uuid.Nil, err
	}

	return invoice, ownerID, nil
}

// ListByCompanyID retrieves all invoices for a company, newest first
func (r *InvoiceRepository) ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*models.Invoice, error) {
	query := `
		SELECT id, company_id, invoice_number, customer_name, customer_email,
			amount, currency, issue_date, due_date, status, created_at
		FROM invoices
		WHERE company_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		err := rows.Scan(
			&invoice.ID,
			&invoice.CompanyID,
			&invoice.InvoiceNumber,
			&invoice.CustomerName,
			&invoice.CustomerEmail,
			&invoice.Amount,
			&invoice.Currency,
			&invoice.IssueDate,
			&invoice.DueDate,
			&invoice.Status,
			&invoice.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

// UpdateStatus updates the payment status of an invoice
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) error {
	query := `UPDATE invoices SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
