package handler

import (
	"log/slog"
	"net/http"
	"time"

	"financas/internal/delivery/http/response"
	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// userBody is the wire shape of a user in administration listings.
// Password hashes never leave the storage layer boundary here.
type userBody struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	RoleID    int       `json:"role_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserBody(user *entity.User) userBody {
	return userBody{
		ID:        user.ID,
		Email:     user.Email,
		RoleID:    int(user.Role),
		UpdatedAt: user.UpdatedAt,
	}
}

// ListUsers returns every registered profile as a bare array.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]userBody, 0, len(users))
	for _, user := range users {
		body = append(body, toUserBody(user))
	}

	return response.Data(c, http.StatusOK, body)
}

// updateRoleBody is the PUT /usuarios/:id/role request payload.
type updateRoleBody struct {
	RoleID int `json:"role_id" validate:"required"`
}

// UpdateRole changes the stored access tier of a user.
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrUserNotFound.WrapMessage("invalid user id")
	}

	var body updateRoleBody
	if err := c.Bind(&body); err != nil {
		return domainerrors.ErrInvalidRole.WrapMessage("invalid role payload")
	}

	if err := c.Validate(&body); err != nil {
		return domainerrors.ErrInvalidRole.WrapMessage(err.Error())
	}

	_, err = h.uc.UpdateUserRole(c.Request().Context(), &usecase.UpdateUserRoleInput{
		UserID: userID,
		RoleID: body.RoleID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Nível de acesso atualizado com sucesso!")
}
