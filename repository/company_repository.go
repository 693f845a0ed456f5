package repository

import (
	"context"
	"errors"

	"duebot-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (user_id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		company.UserID,
		company.Name,
		company.Email,
	).Scan(&company.ID, &company.CreatedAt)

	return err
}

// GetByUserID retrieves the company owned by a user
func (r *CompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, user_id, name, email, created_at
		FROM companies
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&company.ID,
		&company.UserID,
		&company.Name,
		&company.Email,
		&company.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return company, nil
}
