package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menucraft/internal/domain"
	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// slugRetryLimit bounds how many random-suffix slugs are tried when the
// base slug is already taken.
const slugRetryLimit = 3

// CreateBusinessInput carries the caller-supplied fields for a new business
type CreateBusinessInput struct {
	Name         string
	BusinessType domain.BusinessType
	Description  *string
	Currency     string
}

// UpdateBusinessInput is a partial patch; nil fields are left untouched
type UpdateBusinessInput struct {
	Name          *string
	BusinessType  *domain.BusinessType
	Description   *string
	LogoURL       *string
	CoverImageURL *string
	ContactEmail  *string
	ContactPhone  *string
	Address       *string
	WebsiteURL    *string
	PrimaryColor  *string
	Currency      *string
	IsActive      *bool
	IsPublished   *bool
}

// BusinessService defines the interface for business business logic.
// Any authenticated profile may create a business; every other mutation is
// restricted to the owner.
type BusinessService interface {
	Create(ctx context.Context, profileID uuid.UUID, input CreateBusinessInput) (*domain.Business, error)
	GetAll(ctx context.Context, profileID uuid.UUID) ([]*domain.Business, error)
	Get(ctx context.Context, id, profileID uuid.UUID) (*domain.Business, error)
	Update(ctx context.Context, id, profileID uuid.UUID, input UpdateBusinessInput) (*domain.Business, error)
	Delete(ctx context.Context, id, profileID uuid.UUID) error
}

type businessService struct {
	businesses repository.BusinessRepository
}

// NewBusinessService creates a new instance of BusinessService
func NewBusinessService(businesses repository.BusinessRepository) BusinessService {
	return &businessService{businesses: businesses}
}

// Create registers a new business owned by the calling profile. The slug is
// derived from the name; on a collision a few random-suffixed variants are
// tried before giving up.
func (s *businessService) Create(ctx context.Context, profileID uuid.UUID, input CreateBusinessInput) (*domain.Business, error) {
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	business := &domain.Business{
		ID:           uuid.New(),
		ProfileID:    profileID,
		Name:         input.Name,
		Slug:         GenerateSlug(input.Name),
		BusinessType: input.BusinessType,
		Description:  input.Description,
		Currency:     currency,
		IsActive:     true,
		IsPublished:  false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for attempt := 0; ; attempt++ {
		err := s.businesses.Create(ctx, business)
		if err == nil {
			return business, nil
		}
		if !errors.Is(err, repository.ErrBusinessSlugTaken) || attempt >= slugRetryLimit {
			return nil, fmt.Errorf("failed to create business: %w", err)
		}
		business.Slug = GenerateUniqueSlug(input.Name)
	}
}

// GetAll lists the businesses owned by the calling profile
func (s *businessService) GetAll(ctx context.Context, profileID uuid.UUID) ([]*domain.Business, error) {
	return s.businesses.FindByOwner(ctx, profileID)
}

// Get retrieves a single business owned by the calling profile
func (s *businessService) Get(ctx context.Context, id, profileID uuid.UUID) (*domain.Business, error) {
	business, err := s.businesses.FindByIDAndOwner(ctx, id, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return business, nil
}

// Update applies a partial patch to a business owned by the calling profile.
// An empty patch touches nothing except the update timestamp.
func (s *businessService) Update(ctx context.Context, id, profileID uuid.UUID, input UpdateBusinessInput) (*domain.Business, error) {
	business, err := s.businesses.FindByIDAndOwner(ctx, id, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("failed to load business for update: %w", err)
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.BusinessType != nil {
		business.BusinessType = *input.BusinessType
	}
	if input.Description != nil {
		business.Description = input.Description
	}
	if input.LogoURL != nil {
		business.LogoURL = input.LogoURL
	}
	if input.CoverImageURL != nil {
		business.CoverImageURL = input.CoverImageURL
	}
	if input.ContactEmail != nil {
		business.ContactEmail = input.ContactEmail
	}
	if input.ContactPhone != nil {
		business.ContactPhone = input.ContactPhone
	}
	if input.Address != nil {
		business.Address = input.Address
	}
	if input.WebsiteURL != nil {
		business.WebsiteURL = input.WebsiteURL
	}
	if input.PrimaryColor != nil {
		business.PrimaryColor = input.PrimaryColor
	}
	if input.Currency != nil {
		business.Currency = *input.Currency
	}
	if input.IsActive != nil {
		business.IsActive = *input.IsActive
	}
	if input.IsPublished != nil {
		business.IsPublished = *input.IsPublished
	}
	business.UpdatedAt = time.Now()

	if err := s.businesses.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	return business, nil
}

// Delete removes a business owned by the calling profile; categories and
// items cascade away in the persistence layer.
func (s *businessService) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	if _, err := s.businesses.FindByIDAndOwner(ctx, id, profileID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return ErrNotAuthorized
		}
		return fmt.Errorf("failed to load business for delete: %w", err)
	}

	if err := s.businesses.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	return nil
}
