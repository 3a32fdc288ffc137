package identity

import (
	"slices"

	"github.com/google/uuid"
)

// Role distinguishes the two identity kinds the platform supports.
type Role string

const (
	// RoleOwner identifies an account that owns one or more businesses
	// and may switch between them.
	RoleOwner Role = "owner"

	// RoleManager identifies an account permanently bound to a single
	// business with a restricted permission set.
	RoleManager Role = "manager"
)

// Valid reports whether the role is one of the supported kinds.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleManager
}

// Identity is an immutable snapshot of an authenticated account as supplied
// by the identity provider. The resolution layer never mutates it.
//
// The role-specific linkage fields (OwnerID, BusinessID, Permissions) are
// meaningful only for managers; constructors populate exactly the fields
// that belong to each role so invalid combinations are caught once at
// construction rather than checked ad hoc.
type Identity struct {
	ID          string
	Role        Role
	DisplayName string

	// OwnerID and BusinessID link a manager to the business it operates.
	// Both are empty for owners.
	OwnerID    string
	BusinessID string

	// Permissions lists the permission grants of a manager.
	// Nil means "no explicit grants" and falls back to the default set.
	Permissions []string
}

// NewOwner builds an owner identity.
func NewOwner(id, displayName string) Identity {
	return Identity{
		ID:          id,
		Role:        RoleOwner,
		DisplayName: displayName,
	}
}

// NewManager builds a manager identity bound to a business.
// Permissions are copied defensively.
func NewManager(id, ownerID, businessID, displayName string, permissions []string) Identity {
	return Identity{
		ID:          id,
		Role:        RoleManager,
		DisplayName: displayName,
		OwnerID:     ownerID,
		BusinessID:  businessID,
		Permissions: slices.Clone(permissions),
	}
}

// IsOwner reports whether the identity carries the owner role.
func (i Identity) IsOwner() bool { return i.Role == RoleOwner }

// IsManager reports whether the identity carries the manager role.
func (i Identity) IsManager() bool { return i.Role == RoleManager }

// Incomplete reports whether a manager identity is missing the business
// linkage it needs to resolve. Always false for owners: an owner needs
// nothing beyond its own ID.
func (i Identity) Incomplete() bool {
	return i.Role == RoleManager && (i.OwnerID == "" || i.BusinessID == "")
}

// ScopeOwnerID returns the owner account every data path for this identity
// is namespaced under: the identity's own ID for an owner, the linked
// OwnerID for a manager.
func (i Identity) ScopeOwnerID() string {
	if i.Role == RoleManager {
		return i.OwnerID
	}
	return i.ID
}

// NewSessionKey returns a fresh storage key for a browsing session.
// Callers that already track a session token should use that instead;
// this exists for composition roots that have none.
func NewSessionKey() string {
	return "bizctx:session:" + uuid.NewString()
}
