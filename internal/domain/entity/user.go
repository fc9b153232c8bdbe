// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system: one account profile per person.
// Email is the natural key and is always stored in its normalized form
// (lower-cased, whitespace-trimmed); all lookups operate on that form.
type User struct {
	ID           uuid.UUID // Unique identifier, generated at creation, immutable.
	Email        string    // Normalized login identifier, unique across all profiles.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext, never exposed in responses.
	Role         Role      // Access tier, see role.go. Defaults to RoleViewer at registration.
	CreatedAt    time.Time // Timestamp of when this profile was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}
