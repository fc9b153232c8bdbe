package impl

import (
	"context"
	"testing"

	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	mockRepo "financas/internal/mocks/repository"
	"financas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEntryService(t *testing.T) (usecase.EntryUsecase, *mockRepo.MockEntryRepository) {
	entryRepo := mockRepo.NewMockEntryRepository(t)

	service := NewEntryService(EntryServiceParams{
		EntryRepo: entryRepo,
		Logger:    newDiscardLogger(),
	})

	return service, entryRepo
}

func TestEntryService_ListEntries(t *testing.T) {
	service, entryRepo := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Entry{
		{ID: uuid.New(), UserID: userID, Tipo: entity.EntryTypeIncome, Descricao: "Salário", Valor: 5000, Data: "2026-08-05", MesAno: "2026-08"},
		{ID: uuid.New(), UserID: userID, Tipo: entity.EntryTypeExpense, Descricao: "Aluguel", Valor: 1500, Data: "2026-08-01", MesAno: "2026-08"},
	}

	entryRepo.EXPECT().ListByUser(ctx, userID, "2026-08").Return(stored, nil)

	entries, err := service.ListEntries(ctx, &usecase.ListEntriesInput{UserID: userID, MesAno: " 2026-08 "})

	require.NoError(t, err)
	assert.Equal(t, stored, entries)
}

func TestEntryService_ListEntries_StorageFailure(t *testing.T) {
	service, entryRepo := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()

	entryRepo.EXPECT().ListByUser(ctx, userID, "").Return(nil, errors.New("connection refused"))

	entries, err := service.ListEntries(ctx, &usecase.ListEntriesInput{UserID: userID})

	assert.Nil(t, entries)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryListFailed))
}

func TestEntryService_CreateEntry_Success(t *testing.T) {
	service, entryRepo := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateEntryInput{
		UserID:    userID,
		Tipo:      entity.EntryTypeExpense,
		Descricao: "  Mercado ",
		Valor:     230.5,
		Data:      "2026-08-20",
		MesAno:    "2026-08",
	}

	entryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Entry")).
		Run(func(ctx context.Context, entry *entity.Entry) {
			entry.ID = uuid.New()
		}).
		Return(nil)

	entry, err := service.CreateEntry(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "Mercado", entry.Descricao)
	assert.Equal(t, 230.5, entry.Valor)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestEntryService_CreateEntry_MissingFields(t *testing.T) {
	service, _ := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	base := usecase.CreateEntryInput{
		UserID:    userID,
		Tipo:      entity.EntryTypeIncome,
		Descricao: "Salário",
		Valor:     5000,
		Data:      "2026-08-05",
		MesAno:    "2026-08",
	}

	mutations := []func(*usecase.CreateEntryInput){
		func(in *usecase.CreateEntryInput) { in.Tipo = "" },
		func(in *usecase.CreateEntryInput) { in.Descricao = "   " },
		func(in *usecase.CreateEntryInput) { in.Valor = 0 },
		func(in *usecase.CreateEntryInput) { in.Data = "" },
		func(in *usecase.CreateEntryInput) { in.MesAno = "" },
		func(in *usecase.CreateEntryInput) { in.Tipo = "investimento" },
	}

	for _, mutate := range mutations {
		input := base
		mutate(&input)

		entry, err := service.CreateEntry(ctx, &input)

		assert.Nil(t, entry)
		assert.True(t, errors.Is(err, domainerrors.ErrEntryFieldsMissing))
	}
}

func TestEntryService_CreateEntry_StorageFailure(t *testing.T) {
	service, entryRepo := createTestEntryService(t)

	ctx := context.Background()
	input := &usecase.CreateEntryInput{
		UserID:    uuid.New(),
		Tipo:      entity.EntryTypeIncome,
		Descricao: "Salário",
		Valor:     5000,
		Data:      "2026-08-05",
		MesAno:    "2026-08",
	}

	entryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Entry")).
		Return(errors.New("disk full"))

	entry, err := service.CreateEntry(ctx, input)

	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrEntrySaveFailed))
}

func TestEntryService_DeleteEntry_Success(t *testing.T) {
	service, entryRepo := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	entryRepo.EXPECT().Delete(ctx, entryID, userID).Return(nil)

	err := service.DeleteEntry(ctx, &usecase.DeleteEntryInput{UserID: userID, EntryID: entryID})

	assert.NoError(t, err)
}

func TestEntryService_DeleteEntry_StorageFailure(t *testing.T) {
	service, entryRepo := createTestEntryService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	entryRepo.EXPECT().Delete(ctx, entryID, userID).Return(errors.New("connection refused"))

	err := service.DeleteEntry(ctx, &usecase.DeleteEntryInput{UserID: userID, EntryID: entryID})

	assert.True(t, errors.Is(err, domainerrors.ErrEntryDeleteFailed))
}
