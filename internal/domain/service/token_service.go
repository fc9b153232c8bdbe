package service

import (
	"time"

	"financas/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the signed payload of a session token: identity plus the role
// label resolved at issuance time. Validity is entirely determined by
// signature and expiry; nothing is stored server-side.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// HasCapability reports whether the token's role label grants a capability.
func (c *Claims) HasCapability(capability entity.Capability) bool {
	return entity.LabelHasCapability(c.Role, capability)
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a signed session token for a user, embedding the
	// role label derived from the user's stored role.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks signature and expiry and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
