package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"duebot-backend/llm"
	"duebot-backend/models"
	"duebot-backend/storage"

	"github.com/google/uuid"
)

// pdfMimeType is the only upload type the extractor accepts. The
// check runs before any bytes are read from the upload.
const pdfMimeType = "application/pdf"

// ExtractionService turns an uploaded invoice PDF into a transient
// six-field candidate record for form pre-fill. Nothing is persisted
// except an optional best-effort archive of the original upload.
type ExtractionService struct {
	extractor TextExtractor
	llm       llm.Client
	archive   storage.Storage
	files     FileStore
}

// ExtractionServiceOption is a functional option for ExtractionService
type ExtractionServiceOption func(*ExtractionService)

// ExtractionWithExtractor sets the PDF text extractor
func ExtractionWithExtractor(extractor TextExtractor) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.extractor = extractor
	}
}

// ExtractionWithLLM sets the language-model client
func ExtractionWithLLM(client llm.Client) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.llm = client
	}
}

// ExtractionWithArchive enables archiving of uploads. Both the storage
// backend and the file store must be set for archiving to happen.
func ExtractionWithArchive(archive storage.Storage, files FileStore) ExtractionServiceOption {
	return func(s *ExtractionService) {
		s.archive = archive
		s.files = files
	}
}

// NewExtractionService creates a new extraction service
func NewExtractionService(opts ...ExtractionServiceOption) *ExtractionService {
	s := &ExtractionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractInvoiceRequest represents an uploaded document
type ExtractInvoiceRequest struct {
	UserID   uuid.UUID
	Filename string
	MimeType string
	Size     int64
	Data     io.Reader
}

// ExtractInvoiceResult represents the extraction outcome
type ExtractInvoiceResult struct {
	Invoice *models.ExtractedInvoice
}

// ExtractInvoice validates the upload, extracts the text layer, asks
// the model for the fixed candidate shape at temperature 0 and
// strict-decodes the response. A scanned PDF with no text layer fails
// with ErrEmptyExtraction rather than reaching the model.
func (s *ExtractionService) ExtractInvoice(
	ctx context.Context,
	req ExtractInvoiceRequest,
) (*ExtractInvoiceResult, error) {
	if req.Data == nil {
		return nil, ErrMissingFile
	}
	if req.MimeType != pdfMimeType {
		return nil, ErrUnsupportedType
	}

	data, err := io.ReadAll(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	text, err := s.extractor.Text(data)
	if err != nil {
		// Malformed PDFs are indistinguishable from scanned ones as
		// far as the caller is concerned: no usable text layer.
		return nil, fmt.Errorf("%w: %v", ErrEmptyExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyExtraction
	}

	raw, err := s.llm.Complete(ctx, llm.CompletionRequest{
		System:      extractionSystemPrompt,
		User:        buildExtractionUserPrompt(text),
		Temperature: 0,
		ForceJSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	candidate, err := parseExtractedInvoice(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModelResponse, err)
	}

	s.archiveUpload(ctx, req, data)

	return &ExtractInvoiceResult{Invoice: candidate}, nil
}

// archiveUpload stores the original PDF and records it, best-effort.
// An archive failure never fails the extraction request.
func (s *ExtractionService) archiveUpload(ctx context.Context, req ExtractInvoiceRequest, data []byte) {
	if s.archive == nil || s.files == nil {
		return
	}

	fileID := uuid.New()
	storagePath, err := s.archive.Upload(ctx, fileID, req.Filename, bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: failed to archive upload %s: %v", req.Filename, err)
		return
	}

	record := &models.InvoiceFile{
		ID:          fileID,
		UserID:      req.UserID,
		Filename:    req.Filename,
		MimeType:    req.MimeType,
		Size:        int64(len(data)),
		StoragePath: storagePath,
	}
	if err := s.files.Create(ctx, record); err != nil {
		log.Printf("Warning: failed to record archived upload %s: %v", req.Filename, err)
	}
}
