package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"menucraft/internal/domain"

	"github.com/google/uuid"
)

// MenuRepository provides the read-only queries behind the public menu.
// Unlike the owner-scoped repositories it never filters by profile:
// visibility is controlled solely by the is_active/is_published flags.
type MenuRepository interface {
	FindPublishedBySlug(ctx context.Context, slug string) (*domain.Business, error)
	FindCategories(ctx context.Context, businessID uuid.UUID) ([]*domain.Category, error)
	FindAvailableItems(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Item, error)
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

// FindPublishedBySlug retrieves a business by slug, restricted to active and
// published rows. A hidden business and an unknown slug both come back as
// ErrBusinessNotFound.
func (r *menuRepository) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM businesses
		WHERE slug = $1 AND is_active = TRUE AND is_published = TRUE
	`, businessColumns)

	business, err := scanBusiness(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to find published business by slug: %w", err)
	}

	return business, nil
}

// FindCategories retrieves all categories for a business ordered by sort_order
func (r *menuRepository) FindCategories(ctx context.Context, businessID uuid.UUID) ([]*domain.Category, error) {
	query := `
		SELECT id, business_id, name, sort_order, created_at, updated_at
		FROM categories
		WHERE business_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
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
			return nil, fmt.Errorf("failed to scan menu category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu categories: %w", err)
	}

	return categories, nil
}

// FindAvailableItems retrieves the available items across all given categories
// in a single query, ordered by sort_order ascending.
func (r *menuRepository) FindAvailableItems(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Item, error) {
	if len(categoryIDs) == 0 {
		return []*domain.Item{}, nil
	}

	// Build the IN clause with one placeholder per category ID
	placeholders := make([]string, len(categoryIDs))
	args := make([]interface{}, len(categoryIDs))
	for i, id := range categoryIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, category_id, name, description, price, image_url,
			is_available, sort_order, created_at, updated_at
		FROM items
		WHERE category_id IN (%s) AND is_available = TRUE
		ORDER BY sort_order ASC
	`, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list available items: %w", err)
	}
	defer rows.Close()

	items := []*domain.Item{}
	for rows.Next() {
		item := &domain.Item{}
		err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&item.IsAvailable,
			&item.SortOrder,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan available item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating available items: %w", err)
	}

	return items, nil
}
