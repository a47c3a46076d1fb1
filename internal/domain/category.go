package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a named group of items within a business menu.
// SortOrder is the display position among the business's categories;
// values are not required to be contiguous.
type Category struct {
	ID         uuid.UUID `json:"id" db:"id"`
	BusinessID uuid.UUID `json:"business_id" db:"business_id"`
	Name       string    `json:"name" db:"name"`
	SortOrder  int       `json:"sort_order" db:"sort_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Item represents a single menu entry within a category
type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CategoryID  uuid.UUID `json:"category_id" db:"category_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
