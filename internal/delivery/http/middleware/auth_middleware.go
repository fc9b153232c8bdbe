package middleware

import (
	"strings"

	"financas/internal/domain/entity"
	domainerrors "financas/internal/domain/errors"
	"financas/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// contextKeyClaims is the echo context key carrying the validated session claims.
const contextKeyClaims = "session_claims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
// Failures are returned as errors so the central error handler renders the
// exact user-facing messages.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenMissing.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrTokenMalformed.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
		}

		// Set the validated identity on the context for handlers to use.
		c.Set(contextKeyClaims, claims)

		return next(c)
	}
}

// RequireCapability is a middleware factory gating a route on a capability
// of the token's role label. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetIdentity(c)
			if !ok {
				return domainerrors.ErrTokenInvalid.WrapMessage("identity missing from context")
			}

			if !claims.HasCapability(capability) {
				return domainerrors.ErrAdminOnly.WrapMessage("capability not granted: " + string(capability))
			}

			return next(c)
		}
	}
}

// GetIdentity extracts the validated session claims set by Authenticate.
func GetIdentity(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*service.Claims)

	return claims, ok
}
