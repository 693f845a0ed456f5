package service

import (
	"context"

	"duebot-backend/models"

	"github.com/google/uuid"
)

// The store interfaces are the slices of the repository layer each
// service actually touches. The pgx repositories satisfy them; tests
// substitute in-memory fakes.

// InvoiceStore is the invoice persistence surface.
type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*models.Invoice, uuid.UUID, error)
	ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*models.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) error
}

// ReminderStore is the reminder persistence surface.
type ReminderStore interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*models.Reminder, error)
}

// CompanyStore is the company persistence surface.
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error)
}

// UserStore is the user persistence surface.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// FileStore records archived uploads.
type FileStore interface {
	Create(ctx context.Context, file *models.InvoiceFile) error
}

// WaitlistStore records pre-launch signups.
type WaitlistStore interface {
	Create(ctx context.Context, entry *models.WaitlistEntry) error
}

// TextExtractor is the PDF text-extraction capability.
type TextExtractor interface {
	Text(data []byte) (string, error)
}
