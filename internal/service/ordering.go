package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEmptyReorder rejects reorder requests with no entries before any
// persistence call is made.
var ErrEmptyReorder = errors.New("reorder batch must not be empty")

// ReorderEntry pairs a resource ID with the sort_order it should receive.
type ReorderEntry struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// sortOrderStore is the slice of a repository the ordering logic needs.
// Both CategoryRepository and ItemRepository satisfy it; the scope ID is a
// business ID for categories and a category ID for items.
type sortOrderStore interface {
	MaxSortOrder(ctx context.Context, scopeID uuid.UUID) (int, error)
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
}

// nextSortOrder computes the sort_order for a new sibling: one past the
// current maximum, or 0 for an empty scope. This is a read-then-compute
// step with no atomicity against concurrent inserts into the same scope;
// two racing creates can receive the same value, which the data model
// tolerates (ties break by insertion order).
func nextSortOrder(ctx context.Context, store sortOrderStore, scopeID uuid.UUID) (int, error) {
	max, err := store.MaxSortOrder(ctx, scopeID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next sort order: %w", err)
	}
	return max + 1, nil
}

// applyReorder persists the submitted (id, sort_order) pairs one row at a
// time. The writes are not wrapped in a transaction: a failure partway
// through leaves the earlier writes applied, and the caller simply resyncs
// on the next read. Callers are responsible for submitting same-scope
// batches; entries are not cross-checked against each other.
func applyReorder(ctx context.Context, store sortOrderStore, entries []ReorderEntry) error {
	if len(entries) == 0 {
		return ErrEmptyReorder
	}

	for _, entry := range entries {
		if err := store.UpdateSortOrder(ctx, entry.ID, entry.SortOrder); err != nil {
			return fmt.Errorf("failed to apply reorder for %s: %w", entry.ID, err)
		}
	}

	return nil
}
