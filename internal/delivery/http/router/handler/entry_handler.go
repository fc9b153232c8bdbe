package handler

import (
	"log/slog"
	"net/http"

	"financas/internal/delivery/http/middleware"
	"financas/internal/delivery/http/response"
	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for income and expense handlers.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// entryBody is the wire shape of a single entry.
type entryBody struct {
	ID        uuid.UUID `json:"id"`
	Tipo      string    `json:"tipo"`
	Descricao string    `json:"descricao"`
	Valor     float64   `json:"valor"`
	Data      string    `json:"data"`
	MesAno    string    `json:"mes_ano"`
}

func toEntryBody(entry *entity.Entry) entryBody {
	return entryBody{
		ID:        entry.ID,
		Tipo:      entry.Tipo,
		Descricao: entry.Descricao,
		Valor:     entry.Valor,
		Data:      entry.Data,
		MesAno:    entry.MesAno,
	}
}

// List returns the caller's entries as a bare array, optionally filtered by
// the mes_ano query parameter.
func (h *EntryHandler) List(c echo.Context) error {
	claims, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("identity missing from context")
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), &usecase.ListEntriesInput{
		UserID: claims.UserID,
		MesAno: c.QueryParam("mes_ano"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]entryBody, 0, len(entries))
	for _, entry := range entries {
		body = append(body, toEntryBody(entry))
	}

	return response.Data(c, http.StatusOK, body)
}

// Create records a new income or expense for the caller.
func (h *EntryHandler) Create(c echo.Context) error {
	claims, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("identity missing from context")
	}

	var input usecase.CreateEntryInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrEntryFieldsMissing.WrapMessage("invalid entry payload")
	}

	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrEntryFieldsMissing.WrapMessage(err.Error())
	}
	input.UserID = claims.UserID

	if _, err := h.uc.CreateEntry(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Lançamento adicionado com sucesso!")
}

// Delete removes one of the caller's entries.
func (h *EntryHandler) Delete(c echo.Context) error {
	claims, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("identity missing from context")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrEntryIDRequired.WrapMessage("invalid entry id")
	}

	err = h.uc.DeleteEntry(c.Request().Context(), &usecase.DeleteEntryInput{
		UserID:  claims.UserID,
		EntryID: entryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Lançamento excluído com sucesso!")
}
