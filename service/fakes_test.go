package service

import (
	"context"
	"io"

	"duebot-backend/llm"
	"duebot-backend/models"

	"github.com/google/uuid"
)

// In-memory fakes for the store interfaces. Call counters let tests
// assert that failed authorization short-circuits before any model
// call or write happens.

type fakeInvoiceStore struct {
	invoice   *models.Invoice
	ownerID   uuid.UUID
	getErr    error
	createErr error
	updateErr error

	created  []*models.Invoice
	listed   []*models.Invoice
	getCalls int
	statuses map[uuid.UUID]models.InvoiceStatus
}

func (f *fakeInvoiceStore) Create(ctx context.Context, invoice *models.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	invoice.ID = uuid.New()
	f.created = append(f.created, invoice)
	return nil
}

func (f *fakeInvoiceStore) GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*models.Invoice, uuid.UUID, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, uuid.Nil, f.getErr
	}
	return f.invoice, f.ownerID, nil
}

func (f *fakeInvoiceStore) ListByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*models.Invoice, error) {
	return f.listed, nil
}

func (f *fakeInvoiceStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvoiceStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]models.InvoiceStatus)
	}
	f.statuses[id] = status
	return nil
}

type fakeReminderStore struct {
	createErr error
	created   []*models.Reminder
	listed    []*models.Reminder
}

func (f *fakeReminderStore) Create(ctx context.Context, reminder *models.Reminder) error {
	if f.createErr != nil {
		return f.createErr
	}
	reminder.ID = uuid.New()
	f.created = append(f.created, reminder)
	return nil
}

func (f *fakeReminderStore) ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*models.Reminder, error) {
	return f.listed, nil
}

type fakeCompanyStore struct {
	company   *models.Company
	getErr    error
	createErr error
	created   []*models.Company
}

func (f *fakeCompanyStore) Create(ctx context.Context, company *models.Company) error {
	if f.createErr != nil {
		return f.createErr
	}
	company.ID = uuid.New()
	f.created = append(f.created, company)
	return nil
}

func (f *fakeCompanyStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.company, nil
}

type fakeUserStore struct {
	createErr error
	getErr    error
	user      *models.User
	created   []*models.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

type fakeFileStore struct {
	createErr error
	created   []*models.InvoiceFile
}

func (f *fakeFileStore) Create(ctx context.Context, file *models.InvoiceFile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, file)
	return nil
}

type fakeWaitlistStore struct {
	createErr error
	created   []*models.WaitlistEntry
}

func (f *fakeWaitlistStore) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	entry.ID = uuid.New()
	f.created = append(f.created, entry)
	return nil
}

// fakeLLM returns canned responses and records every request it sees.
type fakeLLM struct {
	response string
	err      error
	requests []llm.CompletionRequest
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Text(data []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeArchive implements storage.Storage in memory.
type fakeArchive struct {
	uploadErr error
	uploads   []string
}

func (f *fakeArchive) Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	key := fileID.String() + "_" + filename
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeArchive) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func (f *fakeArchive) Delete(ctx context.Context, key string) error {
	return nil
}

// countingReader tracks whether any bytes were consumed from an upload.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}
