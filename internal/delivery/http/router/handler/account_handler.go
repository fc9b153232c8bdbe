// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"financas/internal/delivery/http/middleware"
	"financas/internal/delivery/http/response"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("invalid registration payload")
	}

	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage(err.Error())
	}

	if _, err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Cadastro realizado com sucesso!")
}

// Login handles the login request and returns the session token.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("invalid login payload")
	}

	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage(err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, http.StatusOK, output.Token)
}

// profileBody is the GET /me response shape.
type profileBody struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Me returns the identity attributes of the current session. Everything it
// needs is already in the validated token; no storage round-trip happens.
func (h *AccountHandler) Me(c echo.Context) error {
	claims, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("identity missing from context")
	}

	return response.Data(c, http.StatusOK, profileBody{
		Email: claims.Email,
		Role:  claims.Role,
	})
}

// Dashboard greets the holder of any valid session.
func (h *AccountHandler) Dashboard(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Bem-vindo à área protegida do MESP 🔐")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Data(c, http.StatusOK, map[string]string{"status": "ok"})
}
