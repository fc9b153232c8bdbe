package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "financas/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDTestContext(t *testing.T, clientID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orcamentos", nil)
	if clientID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, clientID)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newRequestIDTestContext(t, "")

	var seenID string
	var seenLogger *slog.Logger
	err := m.Handle(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestID(c)
		seenLogger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(seenID)
	assert.NoError(t, parseErr)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	// The request-scoped logger must be attached for the layers below.
	assert.NotNil(t, seenLogger)
}

func TestRequestID_HonorsClientHeader(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newRequestIDTestContext(t, "client-supplied-id")

	var seenID string
	var ctxID any
	err := m.Handle(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestID(c)
		ctxID = c.Request().Context().Value(deliverycontext.KeyRequestID)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "client-supplied-id", seenID)
	assert.Equal(t, "client-supplied-id", ctxID)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
