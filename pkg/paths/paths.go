package paths

import (
	"github.com/opsway/bizctx/pkg/business"
	"github.com/opsway/bizctx/pkg/identity"
)

// Resource names the closed set of per-business data collections.
type Resource string

const (
	ResourceBusiness     Resource = "business"
	ResourceInventory    Resource = "inventory"
	ResourceCustomers    Resource = "customers"
	ResourceEmployees    Resource = "employees"
	ResourceSuppliers    Resource = "suppliers"
	ResourceOrders       Resource = "orders"
	ResourceTransactions Resource = "transactions"
	ResourceReports      Resource = "reports"
	ResourceVehicles     Resource = "vehicles"
	ResourceEquipment    Resource = "equipment"
)

// Resources lists every resource a PathMap covers, in stable order.
var Resources = []Resource{
	ResourceBusiness,
	ResourceInventory,
	ResourceCustomers,
	ResourceEmployees,
	ResourceSuppliers,
	ResourceOrders,
	ResourceTransactions,
	ResourceReports,
	ResourceVehicles,
	ResourceEquipment,
}

// PathMap maps each resource to its storage path under the current business.
type PathMap map[Resource]string

// Derive computes the storage paths for an identity operating against the
// current business. It returns nil when there is nothing to scope to: no
// identity (zero role) or no current business. Otherwise the map carries
// every resource in Resources.
//
// The base segment is owners/{ownerID} where ownerID is the identity's own
// ID for an owner and its linked OwnerID for a manager. The business segment
// is businesses/{businessID}: the current selection for an owner, the fixed
// assignment for a manager. The "business" resource maps to the business
// segment itself with no trailing resource name.
func Derive(id identity.Identity, current *business.Business) PathMap {
	if !id.Role.Valid() || current == nil {
		return nil
	}

	businessID := current.ID
	if id.IsManager() {
		businessID = id.BusinessID
	}

	base := "owners/" + id.ScopeOwnerID() + "/businesses/" + businessID

	m := make(PathMap, len(Resources))
	m[ResourceBusiness] = base
	for _, res := range Resources[1:] {
		m[res] = base + "/" + string(res)
	}
	return m
}
