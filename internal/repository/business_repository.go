package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"menucraft/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrBusinessSlugTaken = errors.New("business with this slug already exists")
)

const businessColumns = `id, profile_id, name, slug, business_type, description, logo_url,
	cover_image_url, contact_email, contact_phone, address, website_url,
	primary_color, currency, is_active, is_published, created_at, updated_at`

// BusinessRepository defines the interface for business data access
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	FindByIDAndOwner(ctx context.Context, id, profileID uuid.UUID) (*domain.Business, error)
	FindByOwner(ctx context.Context, profileID uuid.UUID) ([]*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type businessRepository struct {
	db *sql.DB
}

// NewBusinessRepository creates a new instance of BusinessRepository
func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{db: db}
}

// Create inserts a new business into the database using parameterized queries
func (r *businessRepository) Create(ctx context.Context, business *domain.Business) error {
	query := `
		INSERT INTO businesses (id, profile_id, name, slug, business_type, description,
			logo_url, cover_image_url, contact_email, contact_phone, address,
			website_url, primary_color, currency, is_active, is_published,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		business.ID,
		business.ProfileID,
		business.Name,
		business.Slug,
		business.BusinessType,
		business.Description,
		business.LogoURL,
		business.CoverImageURL,
		business.ContactEmail,
		business.ContactPhone,
		business.Address,
		business.WebsiteURL,
		business.PrimaryColor,
		business.Currency,
		business.IsActive,
		business.IsPublished,
		business.CreatedAt,
		business.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "businesses_slug_key") {
			return ErrBusinessSlugTaken
		}
		return fmt.Errorf("failed to create business: %w", err)
	}

	return nil
}

// FindByID retrieves a business by ID
func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1`, businessColumns)

	business, err := scanBusiness(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID: %w", err)
	}

	return business, nil
}

// FindByIDAndOwner retrieves a business only when it is owned by the given profile.
// A missing row and a row owned by someone else are indistinguishable to the caller.
func (r *businessRepository) FindByIDAndOwner(ctx context.Context, id, profileID uuid.UUID) (*domain.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1 AND profile_id = $2`, businessColumns)

	business, err := scanBusiness(r.db.QueryRowContext(ctx, query, id, profileID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID and owner: %w", err)
	}

	return business, nil
}

// FindByOwner retrieves all businesses owned by the given profile
func (r *businessRepository) FindByOwner(ctx context.Context, profileID uuid.UUID) ([]*domain.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE profile_id = $1 ORDER BY created_at ASC`, businessColumns)

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	businesses := []*domain.Business{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating businesses: %w", err)
	}

	return businesses, nil
}

// Update updates an existing business using parameterized queries
func (r *businessRepository) Update(ctx context.Context, business *domain.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, business_type = $3, description = $4, logo_url = $5,
		    cover_image_url = $6, contact_email = $7, contact_phone = $8,
		    address = $9, website_url = $10, primary_color = $11, currency = $12,
		    is_active = $13, is_published = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		business.ID,
		business.Name,
		business.BusinessType,
		business.Description,
		business.LogoURL,
		business.CoverImageURL,
		business.ContactEmail,
		business.ContactPhone,
		business.Address,
		business.WebsiteURL,
		business.PrimaryColor,
		business.Currency,
		business.IsActive,
		business.IsPublished,
		business.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

// Delete removes a business; categories and items go with it via ON DELETE CASCADE
func (r *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM businesses WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (*domain.Business, error) {
	business := &domain.Business{}
	err := row.Scan(
		&business.ID,
		&business.ProfileID,
		&business.Name,
		&business.Slug,
		&business.BusinessType,
		&business.Description,
		&business.LogoURL,
		&business.CoverImageURL,
		&business.ContactEmail,
		&business.ContactPhone,
		&business.Address,
		&business.WebsiteURL,
		&business.PrimaryColor,
		&business.Currency,
		&business.IsActive,
		&business.IsPublished,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return business, nil
}
