package repository

import (
	"context"

	"financas/internal/domain/entity"

	"github.com/google/uuid"
)

// EntryRepository defines the standard operations for entry (lançamento) persistence.
type EntryRepository interface {
	// ListByUser returns the entries owned by a user, newest date first.
	// When mesAno is non-empty the result is restricted to that month bucket.
	ListByUser(ctx context.Context, userID uuid.UUID, mesAno string) ([]*entity.Entry, error)

	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry by ID, scoped to its owner. Deleting an entry
	// that does not exist or belongs to someone else is a no-op.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
