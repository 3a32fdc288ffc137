package sessionstore

import "context"

// Store is a minimal key-value persistence collaborator in the shape of
// browser session storage: best-effort string get/set/remove. Implementations
// may fail (storage disabled, backend down); callers above the Records layer
// never see those failures.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any prior value atomically.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key if present. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
