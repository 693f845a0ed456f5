package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage archives uploaded invoice PDFs so the original document can
// be re-downloaded after extraction.
type Storage interface {
	// Upload stores an invoice file and returns the storage key
	Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves an archived file by storage key
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an archived file by storage key
	Delete(ctx context.Context, key string) error
}

// Backend represents the storage backend type
type Backend string

const (
	BackendLocal Backend = "local"
	BackendS3    Backend = "s3"
)

// Config holds configuration for the invoice archive
type Config struct {
	Backend      Backend
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a storage instance based on configuration
func New(cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalStorage(cfg.LocalPath)
	case BackendS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// NewFromEnv creates a storage instance from environment variables
func NewFromEnv() (Storage, error) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "local" // Default to local for development
	}

	switch Backend(backend) {
	case BackendLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/invoices"
		}
		return NewLocalStorage(localPath)

	case BackendS3:
		cfg := Config{
			Backend:      BackendS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// archiveKey builds a unique storage key for an uploaded invoice.
// Keys are prefixed with the first two characters of the file ID to
// spread objects across directories.
func archiveKey(fileID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filepath.Base(filename), ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	return fmt.Sprintf("%s/%s_%s%s", fileID.String()[:2], fileID.String(), baseName, ext)
}
