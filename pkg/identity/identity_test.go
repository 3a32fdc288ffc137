package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsway/bizctx/pkg/identity"
)

func TestRoleValid(t *testing.T) {
	t.Parallel()

	assert.True(t, identity.RoleOwner.Valid())
	assert.True(t, identity.RoleManager.Valid())
	assert.False(t, identity.Role("admin").Valid())
	assert.False(t, identity.Role("").Valid())
}

func TestNewOwner(t *testing.T) {
	t.Parallel()

	id := identity.NewOwner("u1", "Alice")

	assert.Equal(t, "u1", id.ID)
	assert.True(t, id.IsOwner())
	assert.False(t, id.IsManager())
	assert.False(t, id.Incomplete())
	assert.Equal(t, "u1", id.ScopeOwnerID())
	assert.Empty(t, id.OwnerID)
	assert.Empty(t, id.BusinessID)
}

func TestNewManager(t *testing.T) {
	t.Parallel()

	t.Run("complete profile", func(t *testing.T) {
		t.Parallel()

		perms := []string{"view_inventory"}
		id := identity.NewManager("m1", "o1", "b1", "Bob", perms)

		assert.True(t, id.IsManager())
		assert.False(t, id.Incomplete())
		assert.Equal(t, "o1", id.ScopeOwnerID())

		// Mutating the caller's slice must not leak into the identity.
		perms[0] = "manage_inventory"
		assert.Equal(t, []string{"view_inventory"}, id.Permissions)
	})

	t.Run("missing business is incomplete", func(t *testing.T) {
		t.Parallel()

		id := identity.NewManager("m1", "o1", "", "Bob", nil)
		assert.True(t, id.Incomplete())
	})

	t.Run("missing owner is incomplete", func(t *testing.T) {
		t.Parallel()

		id := identity.NewManager("m1", "", "b1", "Bob", nil)
		assert.True(t, id.Incomplete())
	})
}

func TestNewSessionKey(t *testing.T) {
	t.Parallel()

	a := identity.NewSessionKey()
	b := identity.NewSessionKey()

	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "bizctx:session:")
}
