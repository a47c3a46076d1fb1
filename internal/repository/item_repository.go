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
	ErrItemNotFound = errors.New("item not found")
)

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Item, error)
	MaxSortOrder(ctx context.Context, categoryID uuid.UUID) (int, error)
	Update(ctx context.Context, item *domain.Item) error
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new instance of ItemRepository
func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts a new item into the database using parameterized queries
func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, category_id, name, description, price, image_url,
			is_available, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsAvailable,
		item.SortOrder,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// FindByID retrieves an item by ID using parameterized queries
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url,
			is_available, sort_order, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	item := &domain.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
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
		if err == sql.ErrNoRows {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}

	return item, nil
}

// FindByCategoryID retrieves all items for a category ordered by sort_order
func (r *itemRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Item, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url,
			is_available, sort_order, created_at, updated_at
		FROM items
		WHERE category_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
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
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// MaxSortOrder returns the highest sort_order among a category's items,
// or -1 when the category has none yet.
func (r *itemRepository) MaxSortOrder(ctx context.Context, categoryID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), -1) FROM items WHERE category_id = $1`

	var max int
	if err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to get max item sort order: %w", err)
	}

	return max, nil
}

// Update updates an item's mutable fields using parameterized queries
func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $2, description = $3, price = $4, image_url = $5,
		    is_available = $6, sort_order = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsAvailable,
		item.SortOrder,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// UpdateSortOrder writes only the sort_order column for a single item
func (r *itemRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	query := `UPDATE items SET sort_order = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, sortOrder); err != nil {
		return fmt.Errorf("failed to update item sort order: %w", err)
	}

	return nil
}

// Delete removes an item from the database using parameterized queries
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM items WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
