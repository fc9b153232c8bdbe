package impl

import (
	"context"
	"log/slog"

	deliverycontext "financas/internal/delivery/context"
	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/repository"
	"financas/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every registered profile, ordered by email.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	// Single query operation - use direct repository instance
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUserRole changes the stored access tier of a user. The change is
// only reflected in tokens issued from the target's next login; sessions
// already open keep their original role claim until they expire.
func (srv *adminService) UpdateUserRole(ctx context.Context, input *usecase.UpdateUserRoleInput) (*entity.User, error) {
	newRole := entity.Role(input.RoleID)
	if !newRole.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("role update rejected")
	}

	srv.log(ctx).Info("Updating user role", slog.Any("userID", input.UserID), slog.Int("roleID", input.RoleID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("role update target not found")
			}

			return errors.Wrap(findErr, "failed to find user for role update")
		}

		user.Role = newRole
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist role update")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update user role", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role update transaction")
	}

	srv.log(ctx).Debug("User role updated", slog.Any("userID", updatedUser.ID), slog.Int("roleID", int(updatedUser.Role)))

	return updatedUser, nil
}
