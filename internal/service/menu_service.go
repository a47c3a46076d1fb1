package service

import (
	"context"
	"errors"
	"fmt"

	"menucraft/internal/domain"
	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// ErrMenuNotFound covers every reason a public menu is unavailable: unknown
// slug, deactivated business, or unpublished business. Callers cannot tell
// which.
var ErrMenuNotFound = errors.New("menu not found")

// MenuService assembles the public read-only menu. No ownership checks
// apply here; visibility is gated purely by the business's active and
// published flags.
type MenuService interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Menu, error)
}

type menuService struct {
	menus repository.MenuRepository
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(menus repository.MenuRepository) MenuService {
	return &menuService{menus: menus}
}

// GetBySlug fetches the business, its categories, and the available items
// across all categories in one batched query, then joins them in memory.
// Categories without available items are kept with an empty item list so
// the menu keeps its structure.
func (s *menuService) GetBySlug(ctx context.Context, slug string) (*domain.Menu, error) {
	business, err := s.menus.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to load menu business: %w", err)
	}

	categories, err := s.menus.FindCategories(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu categories: %w", err)
	}

	menu := &domain.Menu{
		Business: domain.MenuBusiness{
			Name:          business.Name,
			Slug:          business.Slug,
			LogoURL:       business.LogoURL,
			CoverImageURL: business.CoverImageURL,
			Description:   business.Description,
			BusinessType:  business.BusinessType,
			ContactEmail:  business.ContactEmail,
			ContactPhone:  business.ContactPhone,
			Address:       business.Address,
			WebsiteURL:    business.WebsiteURL,
			PrimaryColor:  business.PrimaryColor,
			Currency:      business.Currency,
		},
		Categories: []domain.MenuCategory{},
	}

	if len(categories) == 0 {
		return menu, nil
	}

	categoryIDs := make([]uuid.UUID, len(categories))
	for i, category := range categories {
		categoryIDs[i] = category.ID
	}

	items, err := s.menus.FindAvailableItems(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	// Single pass: group items by category, then attach per category.
	// Items arrive ordered by sort_order, so each bucket stays ordered.
	itemsByCategory := make(map[uuid.UUID][]domain.Item, len(categories))
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], *item)
	}

	for _, category := range categories {
		categoryItems := itemsByCategory[category.ID]
		if categoryItems == nil {
			categoryItems = []domain.Item{}
		}
		menu.Categories = append(menu.Categories, domain.MenuCategory{
			Category: *category,
			Items:    categoryItems,
		})
	}

	return menu, nil
}
