package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financas/internal/delivery/http/middleware"
	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/service"
	mockSvc "financas/internal/mocks/service"
	mockUC "financas/internal/mocks/usecase"
	"financas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newSessionJSONContext builds a validated-session context carrying a JSON
// body, running the real bearer middleware against a mocked token service.
func newSessionJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *service.Claims) {
	t.Helper()

	claims := &service.Claims{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Role:   entity.LabelViewer,
	}
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("valid.jwt.token").Return(claims, nil)

	c, rec := newJSONContext(t, method, target, body)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer valid.jwt.token")

	m := middleware.NewAuthMiddleware(tokenSvc)
	require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(c))

	return c, rec, claims
}

func TestEntryHandler_Create(t *testing.T) {
	body := `{"tipo":"receita","descricao":"Salário","valor":4200.50,"data":"2025-07-05","mes_ano":"2025-07"}`
	c, rec, claims := newSessionJSONContext(t, http.MethodPost, "/orcamentos", body)

	uc := mockUC.NewMockEntryUsecase(t)
	uc.EXPECT().
		CreateEntry(mock.Anything, mock.MatchedBy(func(input *usecase.CreateEntryInput) bool {
			return input.UserID == claims.UserID &&
				input.Tipo == entity.EntryTypeIncome &&
				input.Descricao == "Salário"
		})).
		Return(&entity.Entry{ID: uuid.New()}, nil)

	h := NewEntryHandler(uc, nil)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lançamento adicionado com sucesso!", resp["message"])
}

func TestEntryHandler_Create_InvalidPayload(t *testing.T) {
	// No expectations: invalid payloads must be rejected before the usecase.
	uc := mockUC.NewMockEntryUsecase(t)
	h := NewEntryHandler(uc, nil)

	for _, body := range []string{
		`{}`,
		`{"tipo":"receita","valor":25.5,"data":"2025-07-05","mes_ano":"2025-07"}`,
		`{"tipo":"receita","descricao":"Mercado","valor":0,"data":"2025-07-05","mes_ano":"2025-07"}`,
		`{"tipo":"investimento","descricao":"CDB","valor":100,"data":"2025-07-05","mes_ano":"2025-07"}`,
		`{"tipo":"despesa","descricao":"Mercado","valor":25.5,"data":"2025-07-05"}`,
	} {
		c, _, _ := newSessionJSONContext(t, http.MethodPost, "/orcamentos", body)

		err := h.Create(c)

		assert.True(t, errors.Is(err, domainerrors.ErrEntryFieldsMissing), "body: %s", body)
	}
}

func TestEntryHandler_List(t *testing.T) {
	c, rec, claims := newSessionJSONContext(t, http.MethodGet, "/orcamentos?mes_ano=2025-07", "")

	entries := []*entity.Entry{
		{ID: uuid.New(), Tipo: entity.EntryTypeExpense, Descricao: "Mercado", Valor: 25.5, Data: "2025-07-05", MesAno: "2025-07"},
	}
	uc := mockUC.NewMockEntryUsecase(t)
	uc.EXPECT().
		ListEntries(mock.Anything, &usecase.ListEntriesInput{UserID: claims.UserID, MesAno: "2025-07"}).
		Return(entries, nil)

	h := NewEntryHandler(uc, nil)
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []entryBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, entries[0].ID, body[0].ID)
	assert.Equal(t, "Mercado", body[0].Descricao)
}

func TestEntryHandler_Delete_InvalidID(t *testing.T) {
	c, _, _ := newSessionJSONContext(t, http.MethodDelete, "/orcamentos/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	uc := mockUC.NewMockEntryUsecase(t)
	h := NewEntryHandler(uc, nil)

	err := h.Delete(c)

	assert.True(t, errors.Is(err, domainerrors.ErrEntryIDRequired))
}
