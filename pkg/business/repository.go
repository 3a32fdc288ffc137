package business

import "context"

// Repository provides read-only access to business records in the document
// store. Implementations must return ErrBusinessNotFound (possibly wrapped)
// when no record matches; every other failure is a transient I/O error.
type Repository interface {
	// ListOwned returns all businesses owned by the given account, in the
	// store's natural order. An owner with no businesses gets an empty
	// slice, not an error.
	ListOwned(ctx context.Context, ownerID string) ([]Business, error)

	// Get fetches a single business by owner and business ID. The owner
	// scoping doubles as an access check: a business that exists under a
	// different owner is still ErrBusinessNotFound to this caller.
	Get(ctx context.Context, ownerID, businessID string) (*Business, error)
}
