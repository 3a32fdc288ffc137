// Package identity defines the identity snapshot consumed by the business
// context resolution layer.
//
// An identity arrives from the identity provider with one of two roles:
// owner (owns businesses, may switch between them) or manager (bound to a
// single business). Constructors populate only the fields that belong to
// each role, and Incomplete flags managers whose business linkage is
// missing so the resolver can surface a configuration error instead of
// guessing.
package identity
