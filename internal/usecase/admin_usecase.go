package usecase

import (
	"context"

	"financas/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserRoleInput defines the data required to change a user's access level.
type UpdateUserRoleInput struct {
	UserID uuid.UUID
	RoleID int `json:"role_id"`
}

// AdminUsecase defines the interface for administration operations.
// Role changes take effect on the target's next login; tokens already
// issued keep their original role claim until they expire.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUserRole(ctx context.Context, input *UpdateUserRoleInput) (*entity.User, error)
}
