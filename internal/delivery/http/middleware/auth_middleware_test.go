package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/service"
	mockSvc "financas/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orcamentos", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	for _, header := range []string{"Basic abc123", "token-without-scheme", "Bearer ", "Bearer   "} {
		c, _ := newAuthTestContext(t, header)

		err := m.Authenticate(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed), "header: %q", header)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token is expired"))

	c, _ := newAuthTestContext(t, "Bearer garbage")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	claims := &service.Claims{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Role:   entity.LabelViewer,
	}
	tokenSvc.EXPECT().ValidateToken("valid.jwt.token").Return(claims, nil)

	c, rec := newAuthTestContext(t, "Bearer valid.jwt.token")

	var seen *service.Claims
	err := m.Authenticate(func(c echo.Context) error {
		got, ok := GetIdentity(c)
		require.True(t, ok)
		seen = got

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims, seen)
}

func TestRequireCapability_Denied(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	claims := &service.Claims{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Role:   entity.LabelViewer,
	}
	tokenSvc.EXPECT().ValidateToken("viewer.jwt.token").Return(claims, nil)

	c, _ := newAuthTestContext(t, "Bearer viewer.jwt.token")

	chained := m.Authenticate(m.RequireCapability(entity.CapabilityManageUsers)(okHandler))
	err := chained(c)

	assert.True(t, errors.Is(err, domainerrors.ErrAdminOnly))
}

func TestRequireCapability_Granted(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	claims := &service.Claims{
		UserID: uuid.New(),
		Email:  "pedro.pneto@esporte.gov.br",
		Role:   entity.LabelAdministrator,
	}
	tokenSvc.EXPECT().ValidateToken("admin.jwt.token").Return(claims, nil)

	c, rec := newAuthTestContext(t, "Bearer admin.jwt.token")

	chained := m.Authenticate(m.RequireCapability(entity.CapabilityManageUsers)(okHandler))
	err := chained(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireCapability_WithoutAuthenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "")

	// Misordered chains must fail closed, not panic or pass.
	err := m.RequireCapability(entity.CapabilityManageUsers)(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
