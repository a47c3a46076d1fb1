package service

import (
	"context"
	"errors"
	"fmt"

	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// ErrNotAuthorized is the single outcome for both "resource does not exist"
// and "resource belongs to someone else". The two cases are deliberately
// indistinguishable so responses never confirm a resource's existence to a
// non-owner.
var ErrNotAuthorized = errors.New("resource not found or not authorized")

// OwnershipResolver walks the item -> category -> business reference chain
// and checks that the acting profile owns the root business. It is read-only
// and fails closed: a dangling reference anywhere in the chain counts as
// not owned.
type OwnershipResolver struct {
	businesses repository.BusinessRepository
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

// NewOwnershipResolver creates a new OwnershipResolver
func NewOwnershipResolver(
	businesses repository.BusinessRepository,
	categories repository.CategoryRepository,
	items repository.ItemRepository,
) *OwnershipResolver {
	return &OwnershipResolver{
		businesses: businesses,
		categories: categories,
		items:      items,
	}
}

// VerifyBusinessOwnership reports whether the profile owns the business.
// A missing business is reported as not owned, never as an error.
func (r *OwnershipResolver) VerifyBusinessOwnership(ctx context.Context, businessID, profileID uuid.UUID) (bool, error) {
	_, err := r.businesses.FindByIDAndOwner(ctx, businessID, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify business ownership: %w", err)
	}
	return true, nil
}

// ResolveCategoryOwner looks up the category and verifies the profile owns
// its business. On success it returns the owning business ID; a missing
// category, a dangling business reference, and an ownership mismatch all
// return ok=false.
func (r *OwnershipResolver) ResolveCategoryOwner(ctx context.Context, categoryID, profileID uuid.UUID) (uuid.UUID, bool, error) {
	category, err := r.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to resolve category owner: %w", err)
	}

	owned, err := r.VerifyBusinessOwnership(ctx, category.BusinessID, profileID)
	if err != nil {
		return uuid.Nil, false, err
	}
	if !owned {
		return uuid.Nil, false, nil
	}

	return category.BusinessID, true, nil
}

// ResolveItemOwner looks up the item and verifies the profile owns the
// business that transitively contains it. On success it returns the item's
// category ID.
func (r *OwnershipResolver) ResolveItemOwner(ctx context.Context, itemID, profileID uuid.UUID) (uuid.UUID, bool, error) {
	item, err := r.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to resolve item owner: %w", err)
	}

	_, owned, err := r.ResolveCategoryOwner(ctx, item.CategoryID, profileID)
	if err != nil {
		return uuid.Nil, false, err
	}
	if !owned {
		return uuid.Nil, false, nil
	}

	return item.CategoryID, true, nil
}
