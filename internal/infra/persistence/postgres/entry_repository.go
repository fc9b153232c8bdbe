// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/repository"
	"financas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entryRepository implements the repository.EntryRepository interface using GORM.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

// ListByUser returns the entries owned by a user, newest date first.
func (repo *entryRepository) ListByUser(ctx context.Context, userID uuid.UUID, mesAno string) ([]*entity.Entry, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if mesAno != "" {
		query = query.Where("mes_ano = ?", mesAno)
	}

	var entryModels []model.EntryModel
	if err := query.Order("data DESC").Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	entries := make([]*entity.Entry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, toEntryDomain(&entryModels[i]))
	}

	return entries, nil
}

// Create persists a new entry.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntrySaveFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntrySaveFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Delete removes an entry scoped to its owner. Filtering on user_id as well
// as id means a user can never delete someone else's entry; deleting a row
// that is already gone is not an error.
func (repo *entryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.EntryModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete entry")
	}

	return nil
}

// toEntryDomain converts a GORM EntryModel to a domain Entry entity.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	if data == nil {
		return nil
	}

	return &entity.Entry{
		ID:        data.ID,
		UserID:    data.UserID,
		Tipo:      data.Tipo,
		Descricao: data.Descricao,
		Valor:     data.Valor,
		Data:      data.Data,
		MesAno:    data.MesAno,
		CreatedAt: data.CreatedAt,
	}
}

// fromEntryDomain converts a domain Entry entity to a GORM EntryModel for persistence.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	if data == nil {
		return nil
	}

	return &model.EntryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Tipo:      data.Tipo,
		Descricao: data.Descricao,
		Valor:     data.Valor,
		Data:      data.Data,
		MesAno:    data.MesAno,
	}
}
