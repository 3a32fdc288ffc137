// Package sessionstore persists the last-active business across reloads
// within a browsing session.
//
// The raw Store interface mirrors browser session storage: string get, set,
// remove, all best-effort. Records layers the typed session record on top
// and enforces the silent-degrade policy: store failures are logged and
// swallowed, never propagated, so a disabled or unreachable store only costs
// cross-reload persistence.
package sessionstore
