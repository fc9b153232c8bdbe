package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryModel mirrors the 'orcamentos' table: one income or expense record
// per row, owned by a profile.
type EntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Tipo      string    `gorm:"type:varchar(20);not null"`
	Descricao string    `gorm:"type:varchar(255);not null"`
	Valor     float64   `gorm:"type:numeric(14,2);not null"`
	Data      string    `gorm:"type:date;not null"`
	MesAno    string    `gorm:"column:mes_ano;type:varchar(7);index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "orcamentos"
}
