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
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*domain.Category, error)
	MaxSortOrder(ctx context.Context, businessID uuid.UUID) (int, error)
	Update(ctx context.Context, category *domain.Category) error
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a new category into the database using parameterized queries
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, business_id, name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.BusinessID,
		category.Name,
		category.SortOrder,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// FindByID retrieves a category by ID using parameterized queries
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `
		SELECT id, business_id, name, sort_order, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.BusinessID,
		&category.Name,
		&category.SortOrder,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

// FindByBusinessID retrieves all categories for a business ordered by sort_order
func (r *categoryRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*domain.Category, error) {
	query := `
		SELECT id, business_id, name, sort_order, created_at, updated_at
		FROM categories
		WHERE business_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category := &domain.Category{}
		err := rows.Scan(
			&category.ID,
			&category.BusinessID,
			&category.Name,
			&category.SortOrder,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// MaxSortOrder returns the highest sort_order among a business's categories,
// or -1 when the business has none yet.
func (r *categoryRepository) MaxSortOrder(ctx context.Context, businessID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), -1) FROM categories WHERE business_id = $1`

	var max int
	if err := r.db.QueryRowContext(ctx, query, businessID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to get max category sort order: %w", err)
	}

	return max, nil
}

// Update updates a category's mutable fields using parameterized queries
func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, sort_order = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.Name,
		category.SortOrder,
		category.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// UpdateSortOrder writes only the sort_order column for a single category
func (r *categoryRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	query := `UPDATE categories SET sort_order = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, sortOrder); err != nil {
		return fmt.Errorf("failed to update category sort order: %w", err)
	}

	return nil
}

// Delete removes a category; its items go with it via ON DELETE CASCADE
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
