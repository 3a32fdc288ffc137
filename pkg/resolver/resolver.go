package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/opsway/bizctx/pkg/business"
	"github.com/opsway/bizctx/pkg/identity"
	"github.com/opsway/bizctx/pkg/sessionstore"
)

// Resolver determines which business an identity operates against and keeps
// that resolution current through selection, refresh, and identity changes.
//
// All operations are state transitions observable through Snapshot and
// Subscribe; none of them returns an error or panics. Failures land in the
// snapshot's Err field so consumers degrade instead of crashing.
//
// A later Resolve supersedes any in-flight one: each resolution carries a
// generation token and results whose token has gone stale are discarded
// entirely, so out-of-order completions can never mix two identities' state.
type Resolver struct {
	repo    business.Repository
	records *sessionstore.Records
	log     *slog.Logger

	mu    sync.Mutex
	gen   uint64
	snap  Snapshot
	subs  map[int]func(Snapshot)
	subID int
}

// Option configures the resolver.
type Option func(*Resolver)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a resolver over the given repository and session records.
// A nil records falls back to an in-memory store scoped to a fresh session
// key, which keeps the resolver usable when no persistence is wired.
func New(repo business.Repository, records *sessionstore.Records, opts ...Option) *Resolver {
	r := &Resolver{
		repo:    repo,
		records: records,
		log:     slog.Default(),
		snap:    Snapshot{State: StateIdle},
		subs:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.records == nil {
		r.records = sessionstore.NewRecords(sessionstore.NewMemoryStore(), identity.NewSessionKey(), r.log)
	}
	return r
}

// Snapshot returns a copy of the current resolution state.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap.clone()
}

// Subscribe registers a callback invoked after every state transition with
// the post-transition snapshot. Callbacks run outside the resolver's lock,
// on the goroutine that triggered the transition. The returned function
// unsubscribes.
func (r *Resolver) Subscribe(fn func(Snapshot)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subID++
	id := r.subID
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Resolve recomputes the business set and current business for the given
// identity. A nil identity (sign-out) resets to the idle state and leaves
// the session record untouched. Each call supersedes any resolution still
// in flight.
func (r *Resolver) Resolve(ctx context.Context, id *identity.Identity) {
	r.mu.Lock()
	r.gen++
	gen := r.gen

	if id == nil {
		r.snap = Snapshot{State: StateIdle}
		snap := r.snap.clone()
		r.mu.Unlock()
		r.notify(snap)
		return
	}

	r.snap = Snapshot{State: StateLoading, Identity: *id, HasIdentity: true}
	snap := r.snap.clone()
	r.mu.Unlock()
	r.notify(snap)

	switch id.Role {
	case identity.RoleOwner:
		r.resolveOwner(ctx, gen, *id)
	case identity.RoleManager:
		r.resolveManager(ctx, gen, *id)
	default:
		r.log.ErrorContext(ctx, "identity carries unknown role", "identity", id.ID, "role", id.Role)
		r.fail(ctx, gen, ErrUnsupportedRole)
	}
}

// resolveOwner loads the full owned set, then tries session restore and
// falls back to auto-selecting a sole business.
func (r *Resolver) resolveOwner(ctx context.Context, gen uint64, id identity.Identity) {
	list, err := r.repo.ListOwned(ctx, id.ID)
	if err != nil {
		r.fail(ctx, gen, fmt.Errorf("failed to load businesses: %w", err))
		return
	}

	rec, hasRec := r.records.Load(ctx)

	var current *business.Business
	staleRecord := false
	if hasRec {
		if i := slices.IndexFunc(list, func(b business.Business) bool { return b.ID == rec.BusinessID }); i >= 0 {
			b := list[i]
			current = &b
		} else {
			staleRecord = true
		}
	}

	autoSelected := false
	if current == nil && len(list) == 1 {
		b := list[0]
		current = &b
		autoSelected = true
	}

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		r.log.DebugContext(ctx, "discarding superseded resolution", "identity", id.ID)
		return
	}
	r.snap = Snapshot{
		State:       StateLoaded,
		Identity:    id,
		HasIdentity: true,
		Businesses:  list,
		Current:     current,
	}
	snap := r.snap.clone()
	r.mu.Unlock()

	if staleRecord {
		r.records.Clear(ctx)
	}
	if autoSelected {
		r.records.Save(ctx, sessionstore.NewRecord(current.ID, current.Name, ""))
	}
	r.notify(snap)
}

// resolveManager fetches the single assigned business. Missing linkage and
// a missing business are both configuration errors, not transient ones.
func (r *Resolver) resolveManager(ctx context.Context, gen uint64, id identity.Identity) {
	if id.Incomplete() {
		r.fail(ctx, gen, ErrManagerProfileIncomplete)
		return
	}

	b, err := r.repo.Get(ctx, id.OwnerID, id.BusinessID)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			r.fail(ctx, gen, ErrAssignedBusinessNotFound)
		} else {
			r.fail(ctx, gen, fmt.Errorf("failed to load assigned business: %w", err))
		}
		return
	}

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		r.log.DebugContext(ctx, "discarding superseded resolution", "identity", id.ID)
		return
	}
	r.snap = Snapshot{
		State:       StateLoaded,
		Identity:    id,
		HasIdentity: true,
		Businesses:  []business.Business{*b},
		Current:     b,
	}
	snap := r.snap.clone()
	r.mu.Unlock()

	r.records.Save(ctx, sessionstore.NewRecord(b.ID, b.Name, id.ID))
	r.notify(snap)
}

func (r *Resolver) fail(ctx context.Context, gen uint64, err error) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.snap = Snapshot{
		State:       StateFailed,
		Identity:    r.snap.Identity,
		HasIdentity: r.snap.HasIdentity,
		Err:         err,
	}
	snap := r.snap.clone()
	r.mu.Unlock()

	if IsConfigurationError(err) {
		r.log.ErrorContext(ctx, "business resolution failed: profile misconfigured", "error", err)
	} else {
		r.log.ErrorContext(ctx, "business resolution failed", "error", err)
	}
	r.records.Clear(ctx)
	r.notify(snap)
}

// Select makes the given business current and persists the choice. Owner
// only: a manager is bound to its assignment, so manager calls are logged
// no-ops that never error. Membership of the resolver's business set is not
// enforced; an out-of-set selection is accepted and logged.
func (r *Resolver) Select(ctx context.Context, b business.Business) {
	r.mu.Lock()
	if r.snap.HasIdentity && r.snap.Identity.IsManager() {
		r.mu.Unlock()
		r.log.WarnContext(ctx, "manager attempted business selection, ignoring", "business", b.ID)
		return
	}
	if r.snap.State != StateLoaded {
		r.mu.Unlock()
		r.log.WarnContext(ctx, "selection before resolution completed, ignoring", "business", b.ID)
		return
	}
	if !slices.ContainsFunc(r.snap.Businesses, func(have business.Business) bool { return have.ID == b.ID }) {
		r.log.DebugContext(ctx, "selected business is outside the resolved set", "business", b.ID)
	}
	cur := b
	r.snap.Current = &cur
	snap := r.snap.clone()
	r.mu.Unlock()

	r.records.Save(ctx, sessionstore.NewRecord(b.ID, b.Name, ""))
	r.notify(snap)
}

// ClearSelection drops the current business and removes the session record.
// Owner only; manager calls are logged no-ops.
func (r *Resolver) ClearSelection(ctx context.Context) {
	r.mu.Lock()
	if r.snap.HasIdentity && r.snap.Identity.IsManager() {
		r.mu.Unlock()
		r.log.WarnContext(ctx, "manager attempted to clear selection, ignoring")
		return
	}
	if r.snap.State != StateLoaded || r.snap.Current == nil {
		r.mu.Unlock()
		return
	}
	r.snap.Current = nil
	snap := r.snap.clone()
	r.mu.Unlock()

	r.records.Clear(ctx)
	r.notify(snap)
}

// Refresh re-fetches only the currently selected business and overwrites it
// in place, reflecting out-of-band edits without a full re-resolution. No-op
// when nothing is selected; a failing or empty fetch leaves state untouched.
func (r *Resolver) Refresh(ctx context.Context) {
	r.mu.Lock()
	if r.snap.State != StateLoaded || r.snap.Current == nil {
		r.mu.Unlock()
		return
	}
	gen := r.gen
	id := r.snap.Identity
	currentID := r.snap.Current.ID
	r.mu.Unlock()

	b, err := r.repo.Get(ctx, id.ScopeOwnerID(), currentID)
	if err != nil {
		r.log.WarnContext(ctx, "business refresh failed", "business", currentID, "error", err)
		return
	}

	r.mu.Lock()
	if gen != r.gen || r.snap.Current == nil || r.snap.Current.ID != b.ID {
		r.mu.Unlock()
		return
	}
	cur := *b
	r.snap.Current = &cur
	if i := slices.IndexFunc(r.snap.Businesses, func(have business.Business) bool { return have.ID == b.ID }); i >= 0 {
		r.snap.Businesses[i] = *b
	}
	snap := r.snap.clone()
	r.mu.Unlock()

	r.notify(snap)
}

func (r *Resolver) notify(snap Snapshot) {
	r.mu.Lock()
	subs := make([]func(Snapshot), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
