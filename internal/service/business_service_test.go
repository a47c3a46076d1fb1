package service

import (
	"context"
	"strings"
	"testing"

	"menucraft/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_BusinessCreateDerivesSlugFromName(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("new businesses get the slug of their name and safe defaults", prop.ForAll(
		func(name string) bool {
			businesses := newMockBusinessRepository()
			service := NewBusinessService(businesses)
			ctx := context.Background()

			business, err := service.Create(ctx, uuid.New(), CreateBusinessInput{
				Name:         name,
				BusinessType: domain.BusinessTypeRestaurant,
			})
			if err != nil {
				t.Logf("FAIL: Create failed: %v", err)
				return false
			}

			if business.Slug != GenerateSlug(name) {
				t.Logf("FAIL: Slug mismatch. Expected %s, got %s", GenerateSlug(name), business.Slug)
				return false
			}

			if business.Currency != "USD" {
				t.Logf("FAIL: Expected default currency USD, got %s", business.Currency)
				return false
			}

			if !business.IsActive || business.IsPublished {
				t.Logf("FAIL: Expected active and unpublished, got active=%t published=%t",
					business.IsActive, business.IsPublished)
				return false
			}

			return true
		},
		gen.RegexMatch(`[A-Za-z][A-Za-z0-9 ]{2,40}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBusinessCreateRetriesSlugOnCollision(t *testing.T) {
	businesses := newMockBusinessRepository()
	service := NewBusinessService(businesses)
	ctx := context.Background()

	first, err := service.Create(ctx, uuid.New(), CreateBusinessInput{
		Name:         "Corner Cafe",
		BusinessType: domain.BusinessTypeRestaurant,
	})
	if err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	second, err := service.Create(ctx, uuid.New(), CreateBusinessInput{
		Name:         "Corner Cafe",
		BusinessType: domain.BusinessTypeRestaurant,
	})
	if err != nil {
		t.Fatalf("Second create with same name failed: %v", err)
	}

	if second.Slug == first.Slug {
		t.Errorf("Expected distinct slugs, both got %s", first.Slug)
	}
	if !strings.HasPrefix(second.Slug, first.Slug+"-") {
		t.Errorf("Expected suffixed variant of %s, got %s", first.Slug, second.Slug)
	}
}

func TestBusinessGetConflatesMissingAndForeign(t *testing.T) {
	businesses := newMockBusinessRepository()
	service := NewBusinessService(businesses)
	ctx := context.Background()

	ownerID := uuid.New()
	business, err := service.Create(ctx, ownerID, CreateBusinessInput{
		Name:         "Owned Business",
		BusinessType: domain.BusinessTypeRetail,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := service.Get(ctx, business.ID, ownerID); err != nil {
		t.Errorf("Owner get failed: %v", err)
	}

	if _, err := service.Get(ctx, business.ID, uuid.New()); err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for foreign get, got: %v", err)
	}

	if _, err := service.Get(ctx, uuid.New(), ownerID); err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for missing get, got: %v", err)
	}
}

func TestBusinessUpdateAppliesPartialPatch(t *testing.T) {
	businesses := newMockBusinessRepository()
	service := NewBusinessService(businesses)
	ctx := context.Background()

	ownerID := uuid.New()
	business, err := service.Create(ctx, ownerID, CreateBusinessInput{
		Name:         "Patchable",
		BusinessType: domain.BusinessTypeRestaurant,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	published := true
	color := "#ff6600"
	updated, err := service.Update(ctx, business.ID, ownerID, UpdateBusinessInput{
		IsPublished:  &published,
		PrimaryColor: &color,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !updated.IsPublished {
		t.Error("Expected business to be published after patch")
	}
	if updated.PrimaryColor == nil || *updated.PrimaryColor != color {
		t.Errorf("Expected primary color %s, got %v", color, updated.PrimaryColor)
	}
	if updated.Name != "Patchable" {
		t.Errorf("Untouched field changed: %s", updated.Name)
	}
	if updated.Slug != business.Slug {
		t.Errorf("Slug must not change on update, got %s", updated.Slug)
	}

	// An empty patch leaves every field intact
	unchanged, err := service.Update(ctx, business.ID, ownerID, UpdateBusinessInput{})
	if err != nil {
		t.Fatalf("Empty patch failed: %v", err)
	}
	if unchanged.Name != updated.Name || unchanged.IsPublished != updated.IsPublished {
		t.Error("Empty patch changed field values")
	}

	_, err = service.Update(ctx, business.ID, uuid.New(), UpdateBusinessInput{IsPublished: &published})
	if err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for foreign update, got: %v", err)
	}
}

func TestBusinessDeleteRequiresOwnership(t *testing.T) {
	businesses := newMockBusinessRepository()
	service := NewBusinessService(businesses)
	ctx := context.Background()

	ownerID := uuid.New()
	business, err := service.Create(ctx, ownerID, CreateBusinessInput{
		Name:         "Doomed",
		BusinessType: domain.BusinessTypeRestaurant,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := service.Delete(ctx, business.ID, uuid.New()); err != ErrNotAuthorized {
		t.Errorf("Expected ErrNotAuthorized for foreign delete, got: %v", err)
	}

	if err := service.Delete(ctx, business.ID, ownerID); err != nil {
		t.Errorf("Owner delete failed: %v", err)
	}

	if _, err := service.Get(ctx, business.ID, ownerID); err != ErrNotAuthorized {
		t.Errorf("Expected business gone after delete, got: %v", err)
	}
}

func TestBusinessGetAllScopedToOwner(t *testing.T) {
	businesses := newMockBusinessRepository()
	service := NewBusinessService(businesses)
	ctx := context.Background()

	ownerID := uuid.New()
	otherID := uuid.New()

	if _, err := service.Create(ctx, ownerID, CreateBusinessInput{Name: "Mine", BusinessType: domain.BusinessTypeRestaurant}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := service.Create(ctx, otherID, CreateBusinessInput{Name: "Theirs", BusinessType: domain.BusinessTypeRetail}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mine, err := service.GetAll(ctx, ownerID)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Name != "Mine" {
		t.Errorf("Expected only the owner's business, got %d", len(mine))
	}
}
