// Package resolver is the central state machine of the business context
// layer: given an identity, it determines the set of businesses the identity
// may operate against and which one is current.
//
// # Lifecycle
//
// The resolver moves through idle → loading → loaded | failed. A new
// identity re-enters loading; a sign-out (nil identity) resets to idle and
// deliberately leaves the session record alone. Owners resolve the full
// owned set, restore the last-active business from the session store when
// it is still valid, and auto-select a sole business. Managers resolve
// exactly their assigned business or fail with a configuration error.
//
// # Supersession
//
// Resolutions racing each other are settled by a generation token: each
// Resolve bumps it, and any completion carrying a stale token is discarded
// whole. Once resolutions for identities A then B have both been triggered,
// only B's result is ever observable.
//
// # Consumption
//
// Snapshot returns the current state as a value; Subscribe delivers one
// after every transition. No operation returns an error — failures are
// states, not exceptions, so consuming UI degrades instead of crashing.
package resolver
