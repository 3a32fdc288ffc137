package bridge

import (
	"context"

	"github.com/opsway/bizctx/pkg/access"
	"github.com/opsway/bizctx/pkg/business"
	"github.com/opsway/bizctx/pkg/identity"
	"github.com/opsway/bizctx/pkg/paths"
	"github.com/opsway/bizctx/pkg/resolver"
)

// Source is the slice of the resolver the bridge consumes. Satisfied by
// *resolver.Resolver; injected explicitly so composition roots choose the
// collaborator at compile time instead of discovering it at runtime.
type Source interface {
	Snapshot() resolver.Snapshot
	Select(ctx context.Context, b business.Business)
	ClearSelection(ctx context.Context)
	Refresh(ctx context.Context)
}

// NopSource is the typed default collaborator used when no resolver is
// wired. It reports an empty idle state and ignores every action, so
// dependent features degrade to "permit and show empty" instead of
// crashing.
type NopSource struct{}

func (NopSource) Snapshot() resolver.Snapshot {
	return resolver.Snapshot{State: resolver.StateIdle}
}

func (NopSource) Select(ctx context.Context, b business.Business) {}
func (NopSource) ClearSelection(ctx context.Context)              {}
func (NopSource) Refresh(ctx context.Context)                     {}

// Bridge adapts the resolver's state into the flat record legacy consumers
// expect. It only reads and republishes; nothing it hands out can mutate
// the resolver's state.
type Bridge struct {
	source   Source
	eval     *access.Evaluator
	fallback bool
}

// New creates a bridge over the given source. A nil source selects the
// permit-all NopSource; a nil evaluator gets the default one.
func New(source Source, eval *access.Evaluator) *Bridge {
	fallback := false
	if source == nil {
		source = NopSource{}
		fallback = true
	}
	if eval == nil {
		eval = access.NewEvaluator()
	}
	return &Bridge{source: source, eval: eval, fallback: fallback}
}

// Context is the legacy-shaped view of the resolved state. It is a value:
// reading it never observes later transitions, and mutating its slices
// affects nobody.
type Context struct {
	CurrentBusiness   *business.Business
	Businesses        []business.Business
	Loading           bool
	Err               error
	Role              identity.Role
	Identity          *identity.Identity
	DatabasePaths     paths.PathMap
	IsOwner           bool
	IsManager         bool
	CanSelectMultiple bool

	eval      *access.Evaluator
	permitAll bool
}

// Context assembles the current legacy record from the source's snapshot,
// the path deriver, and the permission evaluator.
func (b *Bridge) Context() Context {
	snap := b.source.Snapshot()

	c := Context{
		CurrentBusiness:   snap.Current,
		Businesses:        snap.Businesses,
		Loading:           snap.Loading(),
		Err:               snap.Err,
		IsOwner:           snap.HasIdentity && snap.Identity.IsOwner(),
		IsManager:         snap.HasIdentity && snap.Identity.IsManager(),
		CanSelectMultiple: snap.CanSelectMultiple(),
		eval:              b.eval,
		permitAll:         b.fallback,
	}
	if snap.HasIdentity {
		id := snap.Identity
		c.Identity = &id
		c.Role = id.Role
		c.DatabasePaths = paths.Derive(id, snap.Current)
	}
	return c
}

// HasPermission answers a permission query for the record's identity.
// Without an identity (or on the fallback source) it permits, keeping the
// degraded UI on the "permit and show empty" path.
func (c Context) HasPermission(permission string) bool {
	if c.permitAll || c.Identity == nil {
		return true
	}
	return c.eval.HasPermission(*c.Identity, permission)
}

// Permissions returns the identity's grant set, nil when no identity is
// present.
func (c Context) Permissions() []string {
	if c.Identity == nil {
		return nil
	}
	return c.eval.Permissions(*c.Identity)
}

// Select forwards an owner's business selection to the source.
func (b *Bridge) Select(ctx context.Context, bus business.Business) {
	b.source.Select(ctx, bus)
}

// ClearSelection forwards a selection reset to the source.
func (b *Bridge) ClearSelection(ctx context.Context) {
	b.source.ClearSelection(ctx)
}

// Refresh forwards a current-business refresh to the source.
func (b *Bridge) Refresh(ctx context.Context) {
	b.source.Refresh(ctx)
}
