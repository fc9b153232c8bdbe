package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "financas/internal/delivery/context"
	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/repository"
	"financas/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// entryService implements the EntryUsecase interface.
type entryService struct {
	entryRepo repository.EntryRepository
	logger    *slog.Logger
}

// EntryServiceParams holds dependencies for entryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	EntryRepo repository.EntryRepository
	Logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		entryRepo: params.EntryRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEntries returns the caller's entries, optionally narrowed to one month.
// Entries always belong to the authenticated user; there is no way to read
// another user's records through this operation.
func (srv *entryService) ListEntries(ctx context.Context, input *usecase.ListEntriesInput) ([]*entity.Entry, error) {
	// Single query operation - use direct repository instance
	entries, err := srv.entryRepo.ListByUser(ctx, input.UserID, strings.TrimSpace(input.MesAno))
	if err != nil {
		srv.log(ctx).Error("Failed to list entries", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrEntryListFailed.WrapMessage("failed to list entries")
	}

	return entries, nil
}

// CreateEntry records a new income or expense for the caller.
func (srv *entryService) CreateEntry(ctx context.Context, input *usecase.CreateEntryInput) (*entity.Entry, error) {
	if err := validateEntryInput(input); err != nil {
		srv.log(ctx).Warn("Entry rejected", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	entry := &entity.Entry{
		UserID:    input.UserID,
		Tipo:      input.Tipo,
		Descricao: strings.TrimSpace(input.Descricao),
		Valor:     input.Valor,
		Data:      input.Data,
		MesAno:    input.MesAno,
	}

	if err := srv.entryRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to save entry", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrEntrySaveFailed.WrapMessage("failed to save entry")
	}

	srv.log(ctx).Debug("Entry created", slog.Any("entryID", entry.ID), slog.Any("userID", entry.UserID))

	return entry, nil
}

// DeleteEntry removes one of the caller's entries. Deleting an entry that
// does not exist, or that belongs to someone else, succeeds silently: the
// outcome the caller asked for (no such entry of theirs) already holds.
func (srv *entryService) DeleteEntry(ctx context.Context, input *usecase.DeleteEntryInput) error {
	if err := srv.entryRepo.Delete(ctx, input.EntryID, input.UserID); err != nil {
		srv.log(ctx).Error("Failed to delete entry", slog.Any("entryID", input.EntryID), slog.Any("userID", input.UserID), slog.Any("error", err))

		return domainerrors.ErrEntryDeleteFailed.WrapMessage("failed to delete entry")
	}

	srv.log(ctx).Debug("Entry deleted", slog.Any("entryID", input.EntryID), slog.Any("userID", input.UserID))

	return nil
}

// validateEntryInput enforces the required fields of a new entry.
// All five business fields must be present; a zero valor counts as missing.
func validateEntryInput(input *usecase.CreateEntryInput) error {
	if input.Tipo == "" || strings.TrimSpace(input.Descricao) == "" || input.Valor == 0 ||
		input.Data == "" || input.MesAno == "" {
		return domainerrors.ErrEntryFieldsMissing.WrapMessage("entry validation failed")
	}

	if input.Tipo != entity.EntryTypeIncome && input.Tipo != entity.EntryTypeExpense {
		return errors.Wrap(domainerrors.ErrEntryFieldsMissing, "unknown entry type")
	}

	return nil
}
