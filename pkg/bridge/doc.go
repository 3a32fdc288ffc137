// Package bridge re-exposes the resolver's state in the flat record shape
// older feature components were written against.
//
// The bridge is a read-only adapter: it combines the resolver snapshot with
// derived database paths and permission answers, and forwards actions back
// to the resolver. When no resolver is wired it falls back to a typed no-op
// source that permits everything and shows nothing, chosen explicitly at
// construction rather than discovered at runtime.
package bridge
