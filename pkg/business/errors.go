package business

import "errors"

var (
	// ErrBusinessNotFound is returned when no business matches the query.
	ErrBusinessNotFound = errors.New("business.not_found")

	// ErrFailedToConnect is returned when the document store cannot be
	// reached within the configured retry budget.
	ErrFailedToConnect = errors.New("business.store_connect_failed")
)
