package repository

import (
	"context"

	"duebot-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for archived invoice PDFs
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new archive record
func (r *FileRepository) Create(ctx context.Context, file *models.InvoiceFile) error {
	query := `
		INSERT INTO invoice_files (
			id, user_id, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		file.ID,
		file.UserID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.StoragePath,
	).Scan(&file.CreatedAt)

	return err
}

// ListByUserID retrieves all archived uploads for a user, newest first
func (r *FileRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.InvoiceFile, error) {
	query := `
		SELECT id, user_id, filename, mime_type, size, storage_path, created_at
		FROM invoice_files
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.InvoiceFile
	for rows.Next() {
		file := &models.InvoiceFile{}
		err := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.Filename,
			&file.MimeType,
			&file.Size,
			&file.StoragePath,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}
