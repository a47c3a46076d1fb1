package service

import (
	"context"
	"fmt"
	"time"

	"menucraft/internal/domain"
	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// CreateItemInput carries the caller-supplied fields for a new item
type CreateItemInput struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
}

// UpdateItemInput is a partial patch; nil fields are left untouched
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	IsAvailable *bool
}

// ItemService defines the interface for item business logic. The Admin
// variants skip ownership resolution entirely and must only be reachable
// behind the administrative role gate.
type ItemService interface {
	Create(ctx context.Context, categoryID, profileID uuid.UUID, input CreateItemInput) (*domain.Item, error)
	GetAllByCategory(ctx context.Context, categoryID, profileID uuid.UUID) ([]*domain.Item, error)
	Update(ctx context.Context, id, profileID uuid.UUID, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id, profileID uuid.UUID) error
	Reorder(ctx context.Context, profileID uuid.UUID, entries []ReorderEntry) error

	CreateAdmin(ctx context.Context, categoryID uuid.UUID, input CreateItemInput) (*domain.Item, error)
	GetAllByCategoryAdmin(ctx context.Context, categoryID uuid.UUID) ([]*domain.Item, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.Item, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
	ReorderAdmin(ctx context.Context, entries []ReorderEntry) error
}

type itemService struct {
	items     repository.ItemRepository
	ownership *OwnershipResolver
}

// NewItemService creates a new instance of ItemService
func NewItemService(items repository.ItemRepository, ownership *OwnershipResolver) ItemService {
	return &itemService{
		items:     items,
		ownership: ownership,
	}
}

// Create appends a new item to the end of the category, provided the
// profile owns the business the category belongs to.
func (s *itemService) Create(ctx context.Context, categoryID, profileID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	_, owned, err := s.ownership.ResolveCategoryOwner(ctx, categoryID, profileID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotAuthorized
	}

	return s.createItem(ctx, categoryID, input)
}

// GetAllByCategory lists the category's items ascending by sort_order
func (s *itemService) GetAllByCategory(ctx context.Context, categoryID, profileID uuid.UUID) ([]*domain.Item, error) {
	_, owned, err := s.ownership.ResolveCategoryOwner(ctx, categoryID, profileID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotAuthorized
	}

	return s.items.FindByCategoryID(ctx, categoryID)
}

// Update applies a partial patch to an item owned (transitively) by the profile
func (s *itemService) Update(ctx context.Context, id, profileID uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	_, owned, err := s.ownership.ResolveItemOwner(ctx, id, profileID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotAuthorized
	}

	return s.updateItem(ctx, id, input)
}

// Delete removes an item owned (transitively) by the profile
func (s *itemService) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	_, owned, err := s.ownership.ResolveItemOwner(ctx, id, profileID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotAuthorized
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// Reorder persists a caller-supplied ordering for sibling items. Ownership
// is verified against the first entry only.
func (s *itemService) Reorder(ctx context.Context, profileID uuid.UUID, entries []ReorderEntry) error {
	if len(entries) == 0 {
		return ErrEmptyReorder
	}

	_, owned, err := s.ownership.ResolveItemOwner(ctx, entries[0].ID, profileID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotAuthorized
	}

	return applyReorder(ctx, s.items, entries)
}

// CreateAdmin creates an item without an ownership check
func (s *itemService) CreateAdmin(ctx context.Context, categoryID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	return s.createItem(ctx, categoryID, input)
}

// GetAllByCategoryAdmin lists a category's items without an ownership check
func (s *itemService) GetAllByCategoryAdmin(ctx context.Context, categoryID uuid.UUID) ([]*domain.Item, error) {
	return s.items.FindByCategoryID(ctx, categoryID)
}

// UpdateAdmin patches an item without an ownership check
func (s *itemService) UpdateAdmin(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	return s.updateItem(ctx, id, input)
}

// DeleteAdmin removes an item without an ownership check
func (s *itemService) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ReorderAdmin applies a reorder batch without an ownership check
func (s *itemService) ReorderAdmin(ctx context.Context, entries []ReorderEntry) error {
	return applyReorder(ctx, s.items, entries)
}

func (s *itemService) createItem(ctx context.Context, categoryID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	sortOrder, err := nextSortOrder(ctx, s.items, categoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &domain.Item{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *itemService) updateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load item for update: %w", err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	item.UpdatedAt = time.Now()

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}
