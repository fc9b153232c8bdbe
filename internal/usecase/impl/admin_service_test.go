package impl

import (
	"context"
	"testing"

	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/repository"
	mockRepo "financas/internal/mocks/repository"
	"financas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestAdminService_ListUsers(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleViewer},
		{ID: uuid.New(), Email: "b@example.com", Role: entity.RoleAdministrator},
	}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAdminService_ListUsers_StorageFailure(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

	got, err := fx.service.ListUsers(ctx)

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestAdminService_UpdateUserRole_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	target := &entity.User{ID: uuid.New(), Email: "user@example.com", Role: entity.RoleViewer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{
		UserID: target.ID,
		RoleID: int(entity.RoleEditor),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, updated.Role)
}

func TestAdminService_UpdateUserRole_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	for _, roleID := range []int{0, 5, -1, 99} {
		updated, err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{
			UserID: uuid.New(),
			RoleID: roleID,
		})

		assert.Nil(t, updated)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
	}
}

func TestAdminService_UpdateUserRole_TargetNotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, targetID).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound.WrapMessage("role update target not found"))

	updated, err := fx.service.UpdateUserRole(ctx, &usecase.UpdateUserRoleInput{
		UserID: targetID,
		RoleID: int(entity.RoleAdministrator),
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
