package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "financas/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleTestError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orcamentos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	code, body := handleTestError(t, domainerrors.ErrEmailAlreadyRegistered)

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "E-mail já cadastrado.", body["message"])
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrTokenMissing, "authorization header missing")

	code, body := handleTestError(t, wrapped)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Acesso negado - Token não fornecido", body["message"])
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	code, body := handleTestError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not Found", body["message"])
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	code, body := handleTestError(t, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, code)
	// Internals never leak; callers only see the generic message.
	assert.Equal(t, "Erro interno no servidor. Tente novamente mais tarde.", body["message"])
}
