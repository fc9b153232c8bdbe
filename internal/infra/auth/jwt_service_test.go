package auth

import (
	"testing"
	"time"

	"financas/config"
	"financas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  entity.RoleViewer,
	}

	tokenString, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.LabelViewer, claims.Role)
}

func TestJWTService_AdminRoleLabel(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	admin := &entity.User{
		ID:    uuid.New(),
		Email: "pedro.pneto@esporte.gov.br",
		Role:  entity.RoleAdministrator,
	}

	tokenString, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, entity.LabelAdministrator, claims.Role)
	assert.True(t, claims.HasCapability(entity.CapabilityManageUsers))
}

func TestJWTService_ExpiryMatchesTTL(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	tokenString, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Role: entity.RoleViewer})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, lifetime)
	assert.Equal(t, time.Hour, svc.AccessTokenDuration())
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	tokenString, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Role: entity.RoleViewer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	other := newTestTokenService(t, time.Hour)
	other.secret = "different-secret"

	tokenString, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Role: entity.RoleViewer})
	require.NoError(t, err)

	_, err = other.ValidateToken(tokenString)
	assert.Error(t, err)

	_, err = svc.ValidateToken(tokenString + "x")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
