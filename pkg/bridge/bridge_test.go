package bridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsway/bizctx/pkg/access"
	"github.com/opsway/bizctx/pkg/bridge"
	"github.com/opsway/bizctx/pkg/business"
	"github.com/opsway/bizctx/pkg/identity"
	"github.com/opsway/bizctx/pkg/paths"
	"github.com/opsway/bizctx/pkg/resolver"
	"github.com/opsway/bizctx/pkg/sessionstore"
)

func newResolver(t *testing.T, businesses ...business.Business) *resolver.Resolver {
	t.Helper()
	repo := business.NewMemoryRepository(businesses...)
	records := sessionstore.NewRecords(sessionstore.NewMemoryStore(), "bizctx:session:test", nil)
	return resolver.New(repo, records)
}

func TestBridge_OwnerContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newResolver(t, business.Business{ID: "b1", OwnerID: "u1", Name: "Depot"})
	b := bridge.New(r, access.NewEvaluator())

	owner := identity.NewOwner("u1", "Alice")
	r.Resolve(ctx, &owner)

	c := b.Context()
	require.NotNil(t, c.CurrentBusiness)
	assert.Equal(t, "b1", c.CurrentBusiness.ID)
	assert.True(t, c.IsOwner)
	assert.False(t, c.IsManager)
	assert.False(t, c.Loading)
	assert.False(t, c.CanSelectMultiple, "single business")
	assert.Equal(t, identity.RoleOwner, c.Role)

	require.NotNil(t, c.DatabasePaths)
	assert.Equal(t, "owners/u1/businesses/b1/inventory", c.DatabasePaths[paths.ResourceInventory])

	assert.True(t, c.HasPermission("manage_inventory"))
	assert.Equal(t, []string{access.AllPermissions}, c.Permissions())
}

func TestBridge_ManagerContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newResolver(t, business.Business{ID: "t1", OwnerID: "o1", Name: "Depot"})
	b := bridge.New(r, access.NewEvaluator())

	mgr := identity.NewManager("m1", "o1", "t1", "Bob", []string{"view_inventory"})
	r.Resolve(ctx, &mgr)

	c := b.Context()
	assert.True(t, c.IsManager)
	assert.False(t, c.CanSelectMultiple)
	assert.True(t, c.HasPermission("view_inventory"))
	assert.False(t, c.HasPermission("manage_inventory"))
	assert.Equal(t, []string{"view_inventory"}, c.Permissions())
	assert.Equal(t, "owners/o1/businesses/t1", c.DatabasePaths[paths.ResourceBusiness])
}

func TestBridge_NoCurrentBusiness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newResolver(t,
		business.Business{ID: "b1", OwnerID: "u1", Name: "One"},
		business.Business{ID: "b2", OwnerID: "u1", Name: "Two"},
	)
	b := bridge.New(r, nil)

	owner := identity.NewOwner("u1", "Alice")
	r.Resolve(ctx, &owner)

	c := b.Context()
	assert.Nil(t, c.CurrentBusiness)
	assert.Nil(t, c.DatabasePaths, "paths are nil without a current business")
	assert.True(t, c.CanSelectMultiple)
	assert.Len(t, c.Businesses, 2)
}

func TestBridge_Fallback(t *testing.T) {
	t.Parallel()

	b := bridge.New(nil, nil)

	c := b.Context()
	assert.Nil(t, c.CurrentBusiness)
	assert.False(t, c.Loading)
	assert.Nil(t, c.DatabasePaths)
	assert.Nil(t, c.Identity)
	assert.NoError(t, c.Err)
	assert.True(t, c.HasPermission("anything"), "fallback permits everything")
	assert.Nil(t, c.Permissions())

	// Actions against the fallback are harmless no-ops.
	ctx := context.Background()
	b.Select(ctx, business.Business{ID: "b1"})
	b.ClearSelection(ctx)
	b.Refresh(ctx)
}

func TestBridge_ForwardsActions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newResolver(t,
		business.Business{ID: "b1", OwnerID: "u1", Name: "One"},
		business.Business{ID: "b2", OwnerID: "u1", Name: "Two"},
	)
	b := bridge.New(r, nil)

	owner := identity.NewOwner("u1", "Alice")
	r.Resolve(ctx, &owner)

	b.Select(ctx, business.Business{ID: "b2", OwnerID: "u1", Name: "Two"})
	require.NotNil(t, b.Context().CurrentBusiness)
	assert.Equal(t, "b2", b.Context().CurrentBusiness.ID)

	b.ClearSelection(ctx)
	assert.Nil(t, b.Context().CurrentBusiness)
}

func TestBridge_DoesNotMutateResolverState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newResolver(t, business.Business{ID: "b1", OwnerID: "u1", Name: "Depot"})
	b := bridge.New(r, nil)

	owner := identity.NewOwner("u1", "Alice")
	r.Resolve(ctx, &owner)

	c := b.Context()
	c.Businesses[0].Name = "Hacked"
	c.CurrentBusiness.Name = "Hacked"

	assert.Equal(t, "Depot", r.Snapshot().Businesses[0].Name)
	assert.Equal(t, "Depot", r.Snapshot().Current.Name)
}
