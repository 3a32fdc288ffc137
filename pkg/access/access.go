package access

import (
	"slices"

	"github.com/opsway/bizctx/pkg/identity"
)

// AllPermissions is the sentinel marking an unrestricted grant set.
// Owners always hold it; consumers that enumerate grants should treat its
// presence as "everything".
const AllPermissions = "*"

// ViewDashboard is the minimal grant every manager holds even when the
// profile carries no explicit permissions.
const ViewDashboard = "view_dashboard"

// Evaluator answers permission queries for an identity. It is pure and
// side-effect free: all inputs have a defined answer, malformed profiles
// fail open to the minimal default, and no query ever panics.
type Evaluator struct {
	managerDefaults []string
}

// NewEvaluator creates an evaluator with the built-in manager defaults.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithDefaults(Defaults{})
}

// NewEvaluatorWithDefaults creates an evaluator whose manager fallback
// grant set comes from the given defaults. An empty defaults value keeps
// the built-in single ViewDashboard grant.
func NewEvaluatorWithDefaults(d Defaults) *Evaluator {
	managerDefaults := d.ManagerPermissions
	if len(managerDefaults) == 0 {
		managerDefaults = []string{ViewDashboard}
	}
	return &Evaluator{managerDefaults: slices.Clone(managerDefaults)}
}

// HasPermission reports whether the identity holds the permission.
// Owners hold everything; managers hold exactly the grants on their
// profile, with an absent grant set reading as empty.
func (e *Evaluator) HasPermission(id identity.Identity, permission string) bool {
	if id.Role == identity.RoleOwner {
		return true
	}
	return slices.Contains(id.Permissions, permission)
}

// Permissions returns the identity's grant set: the AllPermissions sentinel
// for owners, the profile's set (or the fallback defaults) for managers.
// The returned slice is a copy.
func (e *Evaluator) Permissions(id identity.Identity) []string {
	if id.Role == identity.RoleOwner {
		return []string{AllPermissions}
	}
	return slices.Clone(e.permissionsFor(id))
}

func (e *Evaluator) permissionsFor(id identity.Identity) []string {
	if id.Permissions != nil {
		return id.Permissions
	}
	return e.managerDefaults
}
