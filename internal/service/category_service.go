package service

import (
	"context"
	"fmt"
	"time"

	"menucraft/internal/domain"
	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// CreateCategoryInput carries the caller-supplied fields for a new category
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput is a partial patch; nil fields are left untouched
type UpdateCategoryInput struct {
	Name *string
}

// CategoryService defines the interface for category business logic
type CategoryService interface {
	Create(ctx context.Context, businessID, profileID uuid.UUID, input CreateCategoryInput) (*domain.Category, error)
	GetAllByBusiness(ctx context.Context, businessID, profileID uuid.UUID) ([]*domain.Category, error)
	Update(ctx context.Context, id, profileID uuid.UUID, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id, profileID uuid.UUID) error
	Reorder(ctx context.Context, profileID uuid.UUID, entries []ReorderEntry) error
}

type categoryService struct {
	categories repository.CategoryRepository
	ownership  *OwnershipResolver
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categories repository.CategoryRepository, ownership *OwnershipResolver) CategoryService {
	return &categoryService{
		categories: categories,
		ownership:  ownership,
	}
}

// Create appends a new category to the end of the business's menu
func (s *categoryService) Create(ctx context.Context, businessID, profileID uuid.UUID, input CreateCategoryInput) (*domain.Category, error) {
	owned, err := s.ownership.VerifyBusinessOwnership(ctx, businessID, profileID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotAuthorized
	}

	sortOrder, err := nextSortOrder(ctx, s.categories, businessID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.Category{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       input.Name,
		SortOrder:  sortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// GetAllByBusiness lists the business's categories ascending by sort_order
func (s *categoryService) GetAllByBusiness(ctx context.Context, businessID, profileID uuid.UUID) ([]*domain.Category, error) {
	owned, err := s.ownership.VerifyBusinessOwnership(ctx, businessID, profileID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotAuthorized
	}

	return s.categories.FindByBusinessID(ctx, businessID)
}

// Update applies a partial patch to a category owned by the profile
func (s *categoryService) Update(ctx context.Context, id, profileID uuid.UUID, input UpdateCategoryInput) (*domain.Category, error) {
	_, owned, err := s.ownership.ResolveCategoryOwner(ctx, id, profileID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotAuthorized
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category for update: %w", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	category.UpdatedAt = time.Now()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// Delete removes a category owned by the profile; its items cascade away
// in the persistence layer.
func (s *categoryService) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	_, owned, err := s.ownership.ResolveCategoryOwner(ctx, id, profileID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotAuthorized
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// Reorder persists a caller-supplied ordering for sibling categories.
// Ownership is verified against the first entry only; the caller is trusted
// to submit a single-business batch.
func (s *categoryService) Reorder(ctx context.Context, profileID uuid.UUID, entries []ReorderEntry) error {
	if len(entries) == 0 {
		return ErrEmptyReorder
	}

	_, owned, err := s.ownership.ResolveCategoryOwner(ctx, entries[0].ID, profileID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotAuthorized
	}

	return applyReorder(ctx, s.categories, entries)
}
