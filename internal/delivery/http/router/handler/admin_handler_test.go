package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	mockUC "financas/internal/mocks/usecase"
	"financas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	updatedAt := time.Date(2025, 7, 10, 15, 4, 5, 0, time.UTC)
	users := []*entity.User{
		{ID: uuid.New(), Email: "a@b.com", Role: entity.RoleAdministrator, UpdatedAt: updatedAt},
		{ID: uuid.New(), Email: "c@d.com", Role: entity.RoleViewer, UpdatedAt: updatedAt.Add(time.Hour)},
	}

	uc := mockUC.NewMockAdminUsecase(t)
	uc.EXPECT().ListUsers(mock.Anything).Return(users, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/usuarios", "")

	h := NewAdminHandler(uc, nil)
	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []userBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, users[0].ID, body[0].ID)
	assert.Equal(t, "a@b.com", body[0].Email)
	assert.Equal(t, int(entity.RoleAdministrator), body[0].RoleID)
	assert.True(t, updatedAt.Equal(body[0].UpdatedAt))
	assert.True(t, updatedAt.Add(time.Hour).Equal(body[1].UpdatedAt))
}

func TestAdminHandler_UpdateRole(t *testing.T) {
	target := uuid.New()

	uc := mockUC.NewMockAdminUsecase(t)
	uc.EXPECT().
		UpdateUserRole(mock.Anything, &usecase.UpdateUserRoleInput{UserID: target, RoleID: int(entity.RoleEditor)}).
		Return(&entity.User{ID: target, Role: entity.RoleEditor}, nil)

	c, rec := newJSONContext(t, http.MethodPut, "/usuarios/"+target.String()+"/role", `{"role_id":2}`)
	c.SetParamNames("id")
	c.SetParamValues(target.String())

	h := NewAdminHandler(uc, nil)
	require.NoError(t, h.UpdateRole(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Nível de acesso atualizado com sucesso!", body["message"])
}

func TestAdminHandler_UpdateRole_MissingRoleID(t *testing.T) {
	// No expectations: the usecase must never be reached.
	uc := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, nil)

	target := uuid.New()
	c, _ := newJSONContext(t, http.MethodPut, "/usuarios/"+target.String()+"/role", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(target.String())

	err := h.UpdateRole(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestAdminHandler_UpdateRole_InvalidUserID(t *testing.T) {
	uc := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, nil)

	c, _ := newJSONContext(t, http.MethodPut, "/usuarios/not-a-uuid/role", `{"role_id":2}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.UpdateRole(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
