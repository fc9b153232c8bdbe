package usecase

import (
	"context"

	"financas/internal/domain/entity"

	"github.com/google/uuid"
)

// ListEntriesInput defines the filters for listing a user's entries.
type ListEntriesInput struct {
	UserID uuid.UUID
	MesAno string // optional "YYYY-MM" filter; empty means all months
}

// CreateEntryInput defines the data required to record an income or expense.
type CreateEntryInput struct {
	UserID    uuid.UUID
	Tipo      string  `json:"tipo" validate:"required,oneof=receita despesa"`
	Descricao string  `json:"descricao" validate:"required"`
	Valor     float64 `json:"valor" validate:"required"`
	Data      string  `json:"data" validate:"required"`
	MesAno    string  `json:"mes_ano" validate:"required"`
}

// DeleteEntryInput identifies the entry to remove, scoped to its owner.
type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// EntryUsecase defines the interface for income and expense operations.
type EntryUsecase interface {
	ListEntries(ctx context.Context, input *ListEntriesInput) ([]*entity.Entry, error)
	CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.Entry, error)
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) error
}
