package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"duebot-backend/llm"
	"duebot-backend/models"

	"github.com/google/uuid"
)

// reminderTemperature leaves room for phrasing variance; extraction
// runs at 0 but reminder copy is expected to vary between calls.
const reminderTemperature = 0.7

// ReminderService generates AI-drafted payment reminders and persists
// them as drafts linked to their invoice.
type ReminderService struct {
	invoices  InvoiceStore
	reminders ReminderStore
	llm       llm.Client
	now       func() time.Time
}

// ReminderServiceOption is a functional option for ReminderService
type ReminderServiceOption func(*ReminderService)

// ReminderWithInvoiceStore sets the invoice store
func ReminderWithInvoiceStore(store InvoiceStore) ReminderServiceOption {
	return func(s *ReminderService) {
		s.invoices = store
	}
}

// ReminderWithReminderStore sets the reminder store
func ReminderWithReminderStore(store ReminderStore) ReminderServiceOption {
	return func(s *ReminderService) {
		s.reminders = store
	}
}

// ReminderWithLLM sets the language-model client
func ReminderWithLLM(client llm.Client) ReminderServiceOption {
	return func(s *ReminderService) {
		s.llm = client
	}
}

// ReminderWithClock overrides the wall clock, used by tests to pin
// the overdue computation.
func ReminderWithClock(now func() time.Time) ReminderServiceOption {
	return func(s *ReminderService) {
		s.now = now
	}
}

// NewReminderService creates a new reminder service
func NewReminderService(opts ...ReminderServiceOption) *ReminderService {
	s := &ReminderService{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateReminderRequest represents a request to generate a reminder
type GenerateReminderRequest struct {
	UserID    uuid.UUID
	InvoiceID uuid.UUID
	Tone      models.Tone
}

// GenerateReminderResult carries the created reminder's identity plus
// the generated text. On ErrSaveFailed the result is still populated
// (with a nil ReminderID) so the caller can surface the unsaved draft
// instead of losing it.
type GenerateReminderResult struct {
	ReminderID uuid.UUID
	Subject    string
	Body       string
}

// GenerateReminder loads the invoice, verifies ownership, asks the
// model for a subject/body pair in the requested tone and persists the
// draft. The ownership check runs before the model call so invoice
// content never reaches the model for an unauthorized request, and
// persistence only happens after a fully validated generation.
func (s *ReminderService) GenerateReminder(
	ctx context.Context,
	req GenerateReminderRequest,
) (*GenerateReminderResult, error) {
	if !req.Tone.Valid() {
		return nil, ErrInvalidTone
	}

	invoice, ownerID, err := s.invoices.GetByIDWithOwner(ctx, req.InvoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}

	if ownerID != req.UserID {
		return nil, ErrNotOwner
	}

	days := daysOverdue(s.now(), invoice.DueDate)

	raw, err := s.llm.Complete(ctx, llm.CompletionRequest{
		System:      buildReminderSystemPrompt(req.Tone),
		User:        buildReminderUserPrompt(invoice, days, req.Tone),
		Temperature: reminderTemperature,
		ForceJSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	draft, err := parseReminderDraft(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModelResponse, err)
	}

	reminder := &models.Reminder{
		InvoiceID: req.InvoiceID,
		Subject:   draft.Subject,
		Body:      draft.Body,
		Tone:      req.Tone,
		SentAt:    nil, // draft until a delivery subsystem dispatches it
	}

	if err := s.reminders.Create(ctx, reminder); err != nil {
		// The generated text is still worth surfacing for a manual
		// retry; return it alongside the error.
		return &GenerateReminderResult{
			Subject: draft.Subject,
			Body:    draft.Body,
		}, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	return &GenerateReminderResult{
		ReminderID: reminder.ID,
		Subject:    draft.Subject,
		Body:       draft.Body,
	}, nil
}

// ListRemindersRequest represents a request to list an invoice's reminders
type ListRemindersRequest struct {
	UserID    uuid.UUID
	InvoiceID uuid.UUID
}

// ListRemindersResult represents the result of listing reminders
type ListRemindersResult struct {
	Reminders []*models.Reminder
}

// ListReminders returns all reminders for an invoice the user owns.
func (s *ReminderService) ListReminders(
	ctx context.Context,
	req ListRemindersRequest,
) (*ListRemindersResult, error) {
	_, ownerID, err := s.invoices.GetByIDWithOwner(ctx, req.InvoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	if ownerID != req.UserID {
		return nil, ErrNotOwner
	}

	reminders, err := s.reminders.ListByInvoiceID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	return &ListRemindersResult{Reminders: reminders}, nil
}

// daysOverdue is the calendar-day truncation of now minus the due
// date: 5 for an invoice due five days ago, -5 for one due in five
// days. It feeds the prompt only and never alters stored status.
func daysOverdue(now, due time.Time) int {
	return int(math.Floor(now.Sub(due).Hours() / 24))
}

// isOverdue reports whether the due date has passed by at least a day
func isOverdue(days int) bool {
	return days > 0
}
