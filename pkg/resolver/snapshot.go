package resolver

import (
	"slices"

	"github.com/opsway/bizctx/pkg/business"
	"github.com/opsway/bizctx/pkg/identity"
)

// State names the resolver's lifecycle position.
type State string

const (
	// StateIdle means no identity is present; nothing is resolved.
	StateIdle State = "idle"

	// StateLoading means a resolution is in flight. Current is always nil
	// while loading.
	StateLoading State = "loading"

	// StateLoaded means resolution completed; Businesses and Current are
	// valid for the identity that triggered it.
	StateLoaded State = "loaded"

	// StateFailed means resolution completed with an error; Businesses is
	// empty and Current is nil.
	StateFailed State = "failed"
)

// Snapshot is an immutable view of the resolver's state. Consumers read it
// and never hand anything back; every slice and record is a copy.
type Snapshot struct {
	State       State
	Identity    identity.Identity
	HasIdentity bool
	Businesses  []business.Business
	Current     *business.Business
	Err         error
}

// Loading reports whether a resolution is in flight.
func (s Snapshot) Loading() bool { return s.State == StateLoading }

// CanSelectMultiple reports whether the identity may switch between
// businesses: only owners with more than one resolved business can.
func (s Snapshot) CanSelectMultiple() bool {
	return s.HasIdentity && s.Identity.IsOwner() && len(s.Businesses) > 1
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Businesses = slices.Clone(s.Businesses)
	if s.Current != nil {
		cur := *s.Current
		out.Current = &cur
	}
	return out
}
