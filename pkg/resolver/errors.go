package resolver

import "errors"

var (
	// ErrManagerProfileIncomplete is surfaced when a manager identity is
	// missing its business linkage. Fatal for that identity until the
	// profile is corrected upstream; retrying cannot fix it.
	ErrManagerProfileIncomplete = errors.New("Manager profile incomplete — missing business assignment")

	// ErrAssignedBusinessNotFound is surfaced when a manager's assigned
	// business no longer exists or belongs to a different owner. Treated
	// as a configuration error for UX purposes.
	ErrAssignedBusinessNotFound = errors.New("Assigned business not found or access denied")

	// ErrUnsupportedRole is surfaced when the identity carries a role the
	// platform does not know.
	ErrUnsupportedRole = errors.New("unsupported identity role")
)

// IsConfigurationError reports whether err is fatal for the identity until
// its profile is fixed upstream, as opposed to a transient I/O failure a
// retry could recover from. UI shows "contact administrator" for these
// instead of a retry button.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrManagerProfileIncomplete) ||
		errors.Is(err, ErrAssignedBusinessNotFound) ||
		errors.Is(err, ErrUnsupportedRole)
}
