package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType enumerates the supported storefront kinds
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeRetail     BusinessType = "retail"
)

// Business represents a tenant storefront owned by a profile
type Business struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	ProfileID     uuid.UUID    `json:"profile_id" db:"profile_id"`
	Name          string       `json:"name" db:"name"`
	Slug          string       `json:"slug" db:"slug"`
	BusinessType  BusinessType `json:"business_type" db:"business_type"`
	Description   *string      `json:"description" db:"description"`
	LogoURL       *string      `json:"logo_url" db:"logo_url"`
	CoverImageURL *string      `json:"cover_image_url" db:"cover_image_url"`
	ContactEmail  *string      `json:"contact_email" db:"contact_email"`
	ContactPhone  *string      `json:"contact_phone" db:"contact_phone"`
	Address       *string      `json:"address" db:"address"`
	WebsiteURL    *string      `json:"website_url" db:"website_url"`
	PrimaryColor  *string      `json:"primary_color" db:"primary_color"`
	Currency      string       `json:"currency" db:"currency"`
	IsActive      bool         `json:"is_active" db:"is_active"`
	IsPublished   bool         `json:"is_published" db:"is_published"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}
