// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the stored access tier of a user profile.
// The integer values mirror the role_id column of the profiles table.
type Role int

const (
	// RoleAdministrator has full access, including user management.
	RoleAdministrator Role = 1
	// RoleEditor may create and modify entries.
	RoleEditor Role = 2
	// RolePartialEditor may modify a restricted subset of entries.
	RolePartialEditor Role = 3
	// RoleViewer is the registration default: read-only access.
	RoleViewer Role = 4
)

// Token role labels. Only the administrator tier survives token issuance;
// tiers 2-4 all collapse to LabelViewer, so they are equivalent at the
// gate until a token carries richer claims.
const (
	LabelAdministrator = "Administrador"
	LabelViewer        = "Ver"
)

// IsValid checks if the Role is one of the four stored tiers.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleEditor, RolePartialEditor, RoleViewer:
		return true
	default:
		return false
	}
}

// Label derives the role label baked into session tokens at issuance time.
// It is not re-derived from the database on later requests, so a role
// change only takes effect once the user logs in again.
func (r Role) Label() string {
	if r == RoleAdministrator {
		return LabelAdministrator
	}

	return LabelViewer
}

// Capability is a single permission a role grants.
type Capability string

const (
	// CapabilityManageUsers allows listing users and changing access tiers.
	CapabilityManageUsers Capability = "manage_users"
	// CapabilityWriteEntries allows creating and deleting entries.
	CapabilityWriteEntries Capability = "write_entries"
	// CapabilityReadEntries allows listing entries.
	CapabilityReadEntries Capability = "read_entries"
)

// Capabilities resolves the capability set of a stored role tier.
// Tiers 2-4 currently grant the same set: every authenticated user may
// read and write their own entries, and only the administrator manages
// users. Differentiating the editor tiers is a known open gap.
func (r Role) Capabilities() []Capability {
	if !r.IsValid() {
		return nil
	}
	if r == RoleAdministrator {
		return []Capability{CapabilityManageUsers, CapabilityWriteEntries, CapabilityReadEntries}
	}

	return []Capability{CapabilityWriteEntries, CapabilityReadEntries}
}

// CapabilitiesForLabel resolves capabilities from a token role label.
// Anything other than the administrator label is treated as the viewer
// tier: the label is the only role information a token carries.
func CapabilitiesForLabel(label string) []Capability {
	if label == LabelAdministrator {
		return RoleAdministrator.Capabilities()
	}

	return RoleViewer.Capabilities()
}

// LabelHasCapability reports whether a token role label grants a capability.
func LabelHasCapability(label string, capability Capability) bool {
	return slices.Contains(CapabilitiesForLabel(label), capability)
}
