package service

import (
	"context"

	"menucraft/internal/domain"
	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// Mock repositories for testing

type mockBusinessRepository struct {
	businesses map[uuid.UUID]*domain.Business
	slugs      map[string]bool
}

func newMockBusinessRepository() *mockBusinessRepository {
	return &mockBusinessRepository{
		businesses: make(map[uuid.UUID]*domain.Business),
		slugs:      make(map[string]bool),
	}
}

func (m *mockBusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	if m.slugs[business.Slug] {
		return repository.ErrBusinessSlugTaken
	}
	copied := *business
	m.businesses[business.ID] = &copied
	m.slugs[business.Slug] = true
	return nil
}

func (m *mockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	business, exists := m.businesses[id]
	if !exists {
		return nil, repository.ErrBusinessNotFound
	}
	copied := *business
	return &copied, nil
}

func (m *mockBusinessRepository) FindByIDAndOwner(ctx context.Context, id, profileID uuid.UUID) (*domain.Business, error) {
	business, exists := m.businesses[id]
	if !exists || business.ProfileID != profileID {
		return nil, repository.ErrBusinessNotFound
	}
	copied := *business
	return &copied, nil
}

func (m *mockBusinessRepository) FindByOwner(ctx context.Context, profileID uuid.UUID) ([]*domain.Business, error) {
	result := []*domain.Business{}
	for _, business := range m.businesses {
		if business.ProfileID == profileID {
			copied := *business
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockBusinessRepository) Update(ctx context.Context, business *domain.Business) error {
	if _, exists := m.businesses[business.ID]; !exists {
		return repository.ErrBusinessNotFound
	}
	copied := *business
	m.businesses[business.ID] = &copied
	return nil
}

func (m *mockBusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	business, exists := m.businesses[id]
	if !exists {
		return repository.ErrBusinessNotFound
	}
	delete(m.slugs, business.Slug)
	delete(m.businesses, id)
	return nil
}

type mockCategoryRepository struct {
	categories map[uuid.UUID]*domain.Category
	// sortOrderWrites records UpdateSortOrder calls in order
	sortOrderWrites []ReorderEntry
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		categories: make(map[uuid.UUID]*domain.Category),
	}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, exists := m.categories[id]
	if !exists {
		return nil, repository.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *mockCategoryRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*domain.Category, error) {
	result := []*domain.Category{}
	for _, category := range m.categories {
		if category.BusinessID == businessID {
			copied := *category
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockCategoryRepository) MaxSortOrder(ctx context.Context, businessID uuid.UUID) (int, error) {
	max := -1
	for _, category := range m.categories {
		if category.BusinessID == businessID && category.SortOrder > max {
			max = category.SortOrder
		}
	}
	return max, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if _, exists := m.categories[category.ID]; !exists {
		return repository.ErrCategoryNotFound
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockCategoryRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	m.sortOrderWrites = append(m.sortOrderWrites, ReorderEntry{ID: id, SortOrder: sortOrder})
	if category, exists := m.categories[id]; exists {
		category.SortOrder = sortOrder
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.categories[id]; !exists {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

type mockItemRepository struct {
	items           map[uuid.UUID]*domain.Item
	sortOrderWrites []ReorderEntry
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{
		items: make(map[uuid.UUID]*domain.Item),
	}
}

func (m *mockItemRepository) Create(ctx context.Context, item *domain.Item) error {
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, exists := m.items[id]
	if !exists {
		return nil, repository.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *mockItemRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Item, error) {
	result := []*domain.Item{}
	for _, item := range m.items {
		if item.CategoryID == categoryID {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockItemRepository) MaxSortOrder(ctx context.Context, categoryID uuid.UUID) (int, error) {
	max := -1
	for _, item := range m.items {
		if item.CategoryID == categoryID && item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *domain.Item) error {
	if _, exists := m.items[item.ID]; !exists {
		return repository.ErrItemNotFound
	}
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockItemRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	m.sortOrderWrites = append(m.sortOrderWrites, ReorderEntry{ID: id, SortOrder: sortOrder})
	if item, exists := m.items[id]; exists {
		item.SortOrder = sortOrder
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, exists := m.items[id]; !exists {
		return repository.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

type mockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	for _, existing := range m.profiles {
		if existing.Email == profile.Email {
			return repository.ErrProfileAlreadyExists
		}
	}
	copied := *profile
	m.profiles[profile.ID] = &copied
	return nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, repository.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (m *mockProfileRepository) FindByAuthUserID(ctx context.Context, authUserID string) (*domain.Profile, error) {
	for _, profile := range m.profiles {
		if profile.AuthUserID != nil && *profile.AuthUserID == authUserID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func (m *mockProfileRepository) FindLegacyByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	for _, profile := range m.profiles {
		if profile.AuthUserID == nil && profile.Email == email {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func (m *mockProfileRepository) LinkAuthUser(ctx context.Context, id uuid.UUID, authUserID string) error {
	profile, exists := m.profiles[id]
	if !exists {
		return repository.ErrProfileNotFound
	}
	profile.AuthUserID = &authUserID
	return nil
}

type mockMenuRepository struct {
	business   *domain.Business
	categories []*domain.Category
	items      []*domain.Item
}

func (m *mockMenuRepository) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	if m.business == nil || m.business.Slug != slug || !m.business.IsActive || !m.business.IsPublished {
		return nil, repository.ErrBusinessNotFound
	}
	copied := *m.business
	return &copied, nil
}

func (m *mockMenuRepository) FindCategories(ctx context.Context, businessID uuid.UUID) ([]*domain.Category, error) {
	result := []*domain.Category{}
	for _, category := range m.categories {
		if category.BusinessID == businessID {
			copied := *category
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockMenuRepository) FindAvailableItems(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Item, error) {
	wanted := make(map[uuid.UUID]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}

	result := []*domain.Item{}
	for _, item := range m.items {
		if wanted[item.CategoryID] && item.IsAvailable {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result, nil
}

// newOwnedMenuFixture builds a business with one category, owned by the
// returned profile ID, registered in the given mocks.
func newOwnedMenuFixture(businesses *mockBusinessRepository, categories *mockCategoryRepository) (profileID, businessID, categoryID uuid.UUID) {
	profileID = uuid.New()
	businessID = uuid.New()
	categoryID = uuid.New()

	businesses.businesses[businessID] = &domain.Business{
		ID:        businessID,
		ProfileID: profileID,
		Name:      "Fixture Business",
		Slug:      "fixture-business",
		IsActive:  true,
	}
	businesses.slugs["fixture-business"] = true

	categories.categories[categoryID] = &domain.Category{
		ID:         categoryID,
		BusinessID: businessID,
		Name:       "Fixture Category",
		SortOrder:  0,
	}

	return profileID, businessID, categoryID
}
