// Package business defines the business (tenant) record and the read-only
// repository the resolution layer queries for it.
//
// Two implementations ship with the package: MongoRepository for the real
// document store and MemoryRepository for tests and store-less composition
// roots. Both scope every lookup by owner so a business under a different
// owner is indistinguishable from a missing one.
package business
