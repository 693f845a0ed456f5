package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Valid reports whether s is one of the known invoice statuses
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// Invoice represents an invoice entity
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	CompanyID     uuid.UUID     `json:"company_id"`
	InvoiceNumber string        `json:"invoice_number"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ExtractedInvoice is the transient candidate produced by PDF
// extraction. Every field is nullable; the record is only used to
// pre-fill the invoice creation form and is never persisted.
type ExtractedInvoice struct {
	InvoiceNumber *string  `json:"invoice_number"`
	CustomerName  *string  `json:"customer_name"`
	CustomerEmail *string  `json:"customer_email"`
	Amount        *float64 `json:"amount"`
	IssueDate     *string  `json:"issue_date"`
	DueDate       *string  `json:"due_date"`
}
