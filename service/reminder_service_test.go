package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"duebot-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(due time.Time) *models.Invoice {
	return &models.Invoice{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		InvoiceNumber: "INV-001",
		CustomerName:  "Acme Corp",
		CustomerEmail: "billing@acme.example",
		Amount:        1500.00,
		Currency:      "USD",
		IssueDate:     due.AddDate(0, -1, 0),
		DueDate:       due,
		Status:        models.InvoiceStatusUnpaid,
	}
}

func newReminderServiceForTest(invoices *fakeInvoiceStore, reminders *fakeReminderStore, model *fakeLLM, now time.Time) *ReminderService {
	return NewReminderService(
		ReminderWithInvoiceStore(invoices),
		ReminderWithReminderStore(reminders),
		ReminderWithLLM(model),
		ReminderWithClock(func() time.Time { return now }),
	)
}

func TestGenerateReminder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	owner := uuid.New()

	t.Run("drafts and persists a firm reminder", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, -10))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		reminders := &fakeReminderStore{}
		model := &fakeLLM{response: `{"subject": "Payment overdue: INV-001", "body": "Hi Acme Corp,\n\nInvoice INV-001 is now 10 days overdue."}`}

		svc := newReminderServiceForTest(invoices, reminders, model, now)

		result, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    owner,
			InvoiceID: invoice.ID,
			Tone:      models.ToneFirm,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ReminderID)
		assert.Equal(t, "Payment overdue: INV-001", result.Subject)

		require.Len(t, reminders.created, 1)
		saved := reminders.created[0]
		assert.Equal(t, invoice.ID, saved.InvoiceID)
		assert.Equal(t, models.ToneFirm, saved.Tone)
		assert.Nil(t, saved.SentAt)

		require.Len(t, model.requests, 1)
		req := model.requests[0]
		assert.Contains(t, req.System, "firm")
		assert.Contains(t, req.User, "INV-001")
		assert.Contains(t, req.User, "$1500.00 USD")
		assert.Contains(t, req.User, "Days overdue: 10")
		assert.InDelta(t, 0.7, req.Temperature, 0.001)
		assert.True(t, req.ForceJSON)
	})

	t.Run("invoice not yet due is described as until due", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, 5))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		model := &fakeLLM{response: `{"subject": "s", "body": "b"}`}

		svc := newReminderServiceForTest(invoices, &fakeReminderStore{}, model, now)

		_, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    owner,
			InvoiceID: invoice.ID,
			Tone:      models.ToneFriendly,
		})
		require.NoError(t, err)
		require.Len(t, model.requests, 1)
		assert.Contains(t, model.requests[0].User, "Days until due: 5")
	})

	t.Run("rejects unknown tone before any lookup", func(t *testing.T) {
		invoices := &fakeInvoiceStore{}
		model := &fakeLLM{}
		svc := newReminderServiceForTest(invoices, &fakeReminderStore{}, model, now)

		_, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    owner,
			InvoiceID: uuid.New(),
			Tone:      models.Tone("aggressive"),
		})
		assert.ErrorIs(t, err, ErrInvalidTone)
		assert.Zero(t, invoices.getCalls)
		assert.Empty(t, model.requests)
	})

	t.Run("missing invoice", func(t *testing.T) {
		invoices := &fakeInvoiceStore{getErr: errors.New("no rows")}
		model := &fakeLLM{}
		svc := newReminderServiceForTest(invoices, &fakeReminderStore{}, model, now)

		_, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    owner,
			InvoiceID: uuid.New(),
			Tone:      models.ToneNeutral,
		})
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
		assert.Empty(t, model.requests)
	})

	t.Run("non-owner never reaches the model", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, -3))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		reminders := &fakeReminderStore{}
		model := &fakeLLM{response: `{"subject": "s", "body": "b"}`}
		svc := newReminderServiceForTest(invoices, reminders, model, now)

		_, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    uuid.New(),
			InvoiceID: invoice.ID,
			Tone:      models.ToneNeutral,
		})
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Empty(t, model.requests)
		assert.Empty(t, reminders.created)
	})

	t.Run("model failure maps to generation error", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, -3))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		model := &fakeLLM{err: errors.New("quota exceeded")}
		svc := newReminderServiceForTest(invoices, &fakeReminderStore{}, model, now)

		_, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    owner,
			InvoiceID: invoice.ID,
			Tone:      models.ToneNeutral,
		})
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("malformed model output is never persisted", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, -3))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		reminders := &fakeReminderStore{}

		for _, raw := range []string{
			"not json at all",
			`{"subject": "s"}`,
			`{"subject": "s", "body": ""}`,
			`{"subject": "s", "body": "b", "extra": true}`,
			`{"subject": "s", "body": "b"} trailing`,
		} {
			model := &fakeLLM{response: raw}
			svc := newReminderServiceForTest(invoices, reminders, model, now)

			_, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
				UserID:    owner,
				InvoiceID: invoice.ID,
				Tone:      models.ToneNeutral,
			})
			assert.ErrorIs(t, err, ErrInvalidModelResponse, "raw: %s", raw)
		}
		assert.Empty(t, reminders.created)
	})

	t.Run("save failure still returns the draft", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, -3))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		reminders := &fakeReminderStore{createErr: errors.New("connection reset")}
		model := &fakeLLM{response: `{"subject": "Reminder", "body": "Please pay."}`}
		svc := newReminderServiceForTest(invoices, reminders, model, now)

		result, err := svc.GenerateReminder(ctx, GenerateReminderRequest{
			UserID:    owner,
			InvoiceID: invoice.ID,
			Tone:      models.ToneNeutral,
		})
		assert.ErrorIs(t, err, ErrSaveFailed)
		require.NotNil(t, result)
		assert.Equal(t, uuid.Nil, result.ReminderID)
		assert.Equal(t, "Reminder", result.Subject)
		assert.Equal(t, "Please pay.", result.Body)
	})

	t.Run("repeated calls create separate drafts", func(t *testing.T) {
		invoice := newTestInvoice(now.AddDate(0, 0, -3))
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		reminders := &fakeReminderStore{}
		model := &fakeLLM{response: `{"subject": "s", "body": "b"}`}
		svc := newReminderServiceForTest(invoices, reminders, model, now)

		req := GenerateReminderRequest{UserID: owner, InvoiceID: invoice.ID, Tone: models.ToneFriendly}
		first, err := svc.GenerateReminder(ctx, req)
		require.NoError(t, err)
		second, err := svc.GenerateReminder(ctx, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.ReminderID, second.ReminderID)
		assert.Len(t, reminders.created, 2)
	})
}

func TestListReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	owner := uuid.New()
	invoice := newTestInvoice(now.AddDate(0, 0, -3))

	t.Run("returns the invoice's reminders", func(t *testing.T) {
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		reminders := &fakeReminderStore{listed: []*models.Reminder{
			{ID: uuid.New(), InvoiceID: invoice.ID, Tone: models.ToneFirm},
		}}
		svc := newReminderServiceForTest(invoices, reminders, &fakeLLM{}, now)

		result, err := svc.ListReminders(ctx, ListRemindersRequest{UserID: owner, InvoiceID: invoice.ID})
		require.NoError(t, err)
		assert.Len(t, result.Reminders, 1)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		invoices := &fakeInvoiceStore{invoice: invoice, ownerID: owner}
		svc := newReminderServiceForTest(invoices, &fakeReminderStore{}, &fakeLLM{}, now)

		_, err := svc.ListReminders(ctx, ListRemindersRequest{UserID: uuid.New(), InvoiceID: invoice.ID})
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"ten days past due", now.AddDate(0, 0, -10), 10},
		{"five days past due", now.AddDate(0, 0, -5), 5},
		{"due right now", now, 0},
		{"due later today", now.Add(6 * time.Hour), -1},
		{"due in five days", now.AddDate(0, 0, 5), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysOverdue(now, tt.due))
		})
	}
}
