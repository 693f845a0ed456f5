package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"duebot-backend/models"
	"duebot-backend/repository"

	"github.com/google/uuid"
)

// InvoiceService handles invoice creation and lookups. Invoices hang
// off the user's company, which is created lazily on first use.
type InvoiceService struct {
	invoices  InvoiceStore
	companies CompanyStore
}

// InvoiceServiceOption is a functional option for InvoiceService
type InvoiceServiceOption func(*InvoiceService)

// InvoiceWithInvoiceStore sets the invoice store
func InvoiceWithInvoiceStore(store InvoiceStore) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.invoices = store
	}
}

// InvoiceWithCompanyStore sets the company store
func InvoiceWithCompanyStore(store CompanyStore) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.companies = store
	}
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(opts ...InvoiceServiceOption) *InvoiceService {
	s := &InvoiceService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	UserID        uuid.UUID
	UserEmail     string
	InvoiceNumber string
	CustomerName  string
	CustomerEmail string
	Amount        float64
	Currency      string
	IssueDate     time.Time
	DueDate       time.Time
}

// CreateInvoiceResult represents the result of creating an invoice
type CreateInvoiceResult struct {
	Invoice *models.Invoice
}

// CreateInvoice creates an invoice under the user's company, creating
// the company first if this is the user's first invoice. The company
// name defaults to the email's local part, matching signup behavior.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*CreateInvoiceResult, error) {
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	company, err := s.getOrCreateCompany(ctx, req.UserID, req.UserEmail)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice := &models.Invoice{
		CompanyID:     company.ID,
		InvoiceNumber: req.InvoiceNumber,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount,
		Currency:      currency,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Status:        models.InvoiceStatusUnpaid,
	}

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return &CreateInvoiceResult{Invoice: invoice}, nil
}

// getOrCreateCompany returns the user's company, creating it on first use
func (s *InvoiceService) getOrCreateCompany(ctx context.Context, userID uuid.UUID, email string) (*models.Company, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	if name == "" {
		name = "My Company"
	}

	company = &models.Company{
		UserID: userID,
		Name:   name,
		Email:  email,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetInvoiceRequest represents a request to fetch a single invoice
type GetInvoiceRequest struct {
	UserID    uuid.UUID
	InvoiceID uuid.UUID
}

// GetInvoiceResult represents the result of fetching an invoice
type GetInvoiceResult struct {
	Invoice *models.Invoice
}

// GetInvoice retrieves an invoice the user owns.
func (s *InvoiceService) GetInvoice(ctx context.Context, req GetInvoiceRequest) (*GetInvoiceResult, error) {
	invoice, ownerID, err := s.invoices.GetByIDWithOwner(ctx, req.InvoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	if ownerID != req.UserID {
		return nil, ErrNotOwner
	}

	return &GetInvoiceResult{Invoice: invoice}, nil
}

// ListInvoicesRequest represents a request to list a user's invoices
type ListInvoicesRequest struct {
	UserID uuid.UUID
}

// ListInvoicesResult represents the result of listing invoices
type ListInvoicesResult struct {
	Invoices []*models.Invoice
}

// ListInvoices returns the user's invoices, newest first. A user with
// no company yet simply has no invoices.
func (s *InvoiceService) ListInvoices(ctx context.Context, req ListInvoicesRequest) (*ListInvoicesResult, error) {
	company, err := s.companies.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ListInvoicesResult{Invoices: []*models.Invoice{}}, nil
		}
		return nil, err
	}

	invoices, err := s.invoices.ListByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	return &ListInvoicesResult{Invoices: invoices}, nil
}

// UpdateStatusRequest represents a request to toggle payment status
type UpdateStatusRequest struct {
	UserID    uuid.UUID
	InvoiceID uuid.UUID
	Status    models.InvoiceStatus
}

// UpdateStatusResult represents the result of a status update
type UpdateStatusResult struct{}

// UpdateStatus marks an invoice paid or unpaid after verifying the
// caller owns it.
func (s *InvoiceService) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*UpdateStatusResult, error) {
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	_, ownerID, err := s.invoices.GetByIDWithOwner(ctx, req.InvoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	if ownerID != req.UserID {
		return nil, ErrNotOwner
	}

	if err := s.invoices.UpdateStatus(ctx, req.InvoiceID, req.Status); err != nil {
		return nil, err
	}

	return &UpdateStatusResult{}, nil
}
