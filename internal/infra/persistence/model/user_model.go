package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique index on email is the final arbiter of
// uniqueness: the service-level pre-check only exists for a friendly 409,
// concurrent registrations that race past it fail here.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	RoleID       int       `gorm:"not null;default:4"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Entries []EntryModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "profiles"
}
