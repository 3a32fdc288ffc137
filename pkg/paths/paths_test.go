package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsway/bizctx/pkg/business"
	"github.com/opsway/bizctx/pkg/identity"
	"github.com/opsway/bizctx/pkg/paths"
)

func TestDerive_Owner(t *testing.T) {
	t.Parallel()

	owner := identity.NewOwner("u1", "Alice")
	current := &business.Business{ID: "b1", OwnerID: "u1", Name: "Depot"}

	m := paths.Derive(owner, current)
	require.NotNil(t, m)
	require.Len(t, m, len(paths.Resources))

	assert.Equal(t, "owners/u1/businesses/b1", m[paths.ResourceBusiness])
	assert.Equal(t, "owners/u1/businesses/b1/inventory", m[paths.ResourceInventory])
	assert.Equal(t, "owners/u1/businesses/b1/equipment", m[paths.ResourceEquipment])

	for _, res := range paths.Resources {
		assert.NotEmpty(t, m[res], "resource %s must be present", res)
	}
}

func TestDerive_Manager(t *testing.T) {
	t.Parallel()

	mgr := identity.NewManager("m1", "o1", "t1", "Bob", nil)
	current := &business.Business{ID: "t1", OwnerID: "o1", Name: "Depot"}

	m := paths.Derive(mgr, current)
	require.NotNil(t, m)

	// Paths are scoped by the manager's linkage, not its own account ID.
	assert.Equal(t, "owners/o1/businesses/t1", m[paths.ResourceBusiness])
	assert.Equal(t, "owners/o1/businesses/t1/orders", m[paths.ResourceOrders])
}

func TestDerive_Nil(t *testing.T) {
	t.Parallel()

	t.Run("no current business", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, paths.Derive(identity.NewOwner("u1", "Alice"), nil))
	})

	t.Run("absent identity", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, paths.Derive(identity.Identity{}, &business.Business{ID: "b1"}))
	})
}
