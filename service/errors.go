package service

import "errors"

var (
	// Extraction
	ErrMissingFile     = errors.New("no file provided")
	ErrUnsupportedType = errors.New("please upload a PDF file")
	ErrEmptyExtraction = errors.New("could not extract text from PDF")

	// Language model
	ErrGenerationFailed     = errors.New("failed to generate content")
	ErrInvalidModelResponse = errors.New("invalid model response format")

	// Invoices and reminders
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNotOwner        = errors.New("invoice belongs to another account")
	ErrInvalidTone     = errors.New("tone must be friendly, neutral or firm")
	ErrInvalidStatus   = errors.New("status must be paid or unpaid")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrSaveFailed      = errors.New("failed to save reminder")

	// Accounts
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
