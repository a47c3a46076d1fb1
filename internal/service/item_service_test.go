package service

import (
	"context"
	"testing"

	"menucraft/internal/domain"

	"github.com/google/uuid"
)

func newItemServiceFixture() (ItemService, *mockBusinessRepository, *mockCategoryRepository, *mockItemRepository) {
	businesses := newMockBusinessRepository()
	categories := newMockCategoryRepository()
	items := newMockItemRepository()
	ownership := NewOwnershipResolver(businesses, categories, items)
	return NewItemService(items, ownership), businesses, categories, items
}

func addTestItem(items *mockItemRepository, categoryID uuid.UUID, name string, sortOrder int) uuid.UUID {
	id := uuid.New()
	items.items[id] = &domain.Item{
		ID:          id,
		CategoryID:  categoryID,
		Name:        name,
		Price:       5.00,
		IsAvailable: true,
		SortOrder:   sortOrder,
	}
	return id
}

func TestItemCreateRequiresChainOwnership(t *testing.T) {
	service, businesses, categories, _ := newItemServiceFixture()
	ctx := context.Background()

	profileID, _, categoryID := newOwnedMenuFixture(businesses, categories)
	stranger := uuid.New()

	item, err := service.Create(ctx, categoryID, profileID, CreateItemInput{Name: "Margherita", Price: 11.50})
	if err != nil {
		t.Fatalf("Owner create failed: %v", err)
	}
	if !item.IsAvailable {
		t.Error("New items must default to available")
	}
	if item.SortOrder != 0 {
		t.Errorf("First item in category should get sort order 0, got %d", item.SortOrder)
	}

	_, err = service.Create(ctx, categoryID, stranger, CreateItemInput{Name: "Forbidden", Price: 1})
	if err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for non-owner, got: %v", err)
	}

	// Category under nobody's business
	_, err = service.Create(ctx, uuid.New(), profileID, CreateItemInput{Name: "Orphan", Price: 1})
	if err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for missing category, got: %v", err)
	}
}

func TestItemUpdateAppliesPartialPatch(t *testing.T) {
	service, businesses, categories, items := newItemServiceFixture()
	ctx := context.Background()

	profileID, _, categoryID := newOwnedMenuFixture(businesses, categories)
	itemID := addTestItem(items, categoryID, "Carbonara", 0)

	newPrice := 13.00
	unavailable := false
	updated, err := service.Update(ctx, itemID, profileID, UpdateItemInput{
		Price:       &newPrice,
		IsAvailable: &unavailable,
	})
	if err != nil {
		t.Fatalf("Owner update failed: %v", err)
	}

	if updated.Price != newPrice {
		t.Errorf("Expected price %f, got %f", newPrice, updated.Price)
	}
	if updated.IsAvailable {
		t.Error("Expected item to be unavailable after patch")
	}
	if updated.Name != "Carbonara" {
		t.Errorf("Untouched field changed: %s", updated.Name)
	}

	_, err = service.Update(ctx, itemID, uuid.New(), UpdateItemInput{Price: &newPrice})
	if err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for foreign update, got: %v", err)
	}
}

func TestItemDeleteConflatesMissingAndForeign(t *testing.T) {
	service, businesses, categories, items := newItemServiceFixture()
	ctx := context.Background()

	profileID, _, categoryID := newOwnedMenuFixture(businesses, categories)
	itemID := addTestItem(items, categoryID, "Tiramisu", 0)

	if err := service.Delete(ctx, itemID, uuid.New()); err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for foreign delete, got: %v", err)
	}

	if err := service.Delete(ctx, uuid.New(), profileID); err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for missing delete, got: %v", err)
	}

	if err := service.Delete(ctx, itemID, profileID); err != nil {
		t.Errorf("Owner delete failed: %v", err)
	}
}

func TestItemReorderChecksOwnershipOnFirstEntry(t *testing.T) {
	service, businesses, categories, items := newItemServiceFixture()
	ctx := context.Background()

	profileID, _, categoryID := newOwnedMenuFixture(businesses, categories)
	first := addTestItem(items, categoryID, "First", 0)
	second := addTestItem(items, categoryID, "Second", 1)

	entries := []ReorderEntry{
		{ID: first, SortOrder: 1},
		{ID: second, SortOrder: 0},
	}

	if err := service.Reorder(ctx, uuid.New(), entries); err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for foreign reorder, got: %v", err)
	}

	if err := service.Reorder(ctx, profileID, nil); err != ErrEmptyReorder {
		t.Errorf("Expected ErrEmptyReorder, got: %v", err)
	}

	if err := service.Reorder(ctx, profileID, entries); err != nil {
		t.Fatalf("Owner reorder failed: %v", err)
	}

	if items.items[first].SortOrder != 1 || items.items[second].SortOrder != 0 {
		t.Error("Reorder not applied to item sort orders")
	}
}

func TestItemAdminVariantsBypassOwnership(t *testing.T) {
	service, businesses, categories, items := newItemServiceFixture()
	ctx := context.Background()

	// The admin never owns this business
	_, _, categoryID := newOwnedMenuFixture(businesses, categories)

	item, err := service.CreateAdmin(ctx, categoryID, CreateItemInput{Name: "Staff Special", Price: 3.50})
	if err != nil {
		t.Fatalf("Admin create failed: %v", err)
	}

	listed, err := service.GetAllByCategoryAdmin(ctx, categoryID)
	if err != nil {
		t.Fatalf("Admin list failed: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("Expected 1 item, got %d", len(listed))
	}

	newName := "Renamed Special"
	updated, err := service.UpdateAdmin(ctx, item.ID, UpdateItemInput{Name: &newName})
	if err != nil {
		t.Fatalf("Admin update failed: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("Expected name %s, got %s", newName, updated.Name)
	}

	if err := service.ReorderAdmin(ctx, []ReorderEntry{{ID: item.ID, SortOrder: 5}}); err != nil {
		t.Fatalf("Admin reorder failed: %v", err)
	}
	if items.items[item.ID].SortOrder != 5 {
		t.Error("Admin reorder not applied")
	}

	if err := service.DeleteAdmin(ctx, item.ID); err != nil {
		t.Fatalf("Admin delete failed: %v", err)
	}
	if _, exists := items.items[item.ID]; exists {
		t.Error("Item still present after admin delete")
	}
}
