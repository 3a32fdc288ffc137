// Package bizctx is a multi-tenant business-context resolution and
// role-based access layer.
//
// Given an authenticated identity, the module determines which business
// (tenant) the identity operates against, derives the tenant-scoped data
// paths every other feature must use, and answers permission queries.
// Authentication itself, business-data validation, and enforcement beyond
// yes/no answers stay with external collaborators.
//
// # Packages
//
//   - pkg/identity: the identity snapshot (owner or manager) supplied by
//     the identity provider
//   - pkg/business: the business record and its read-only repository
//     (MongoDB or in-memory)
//   - pkg/sessionstore: cross-reload memory of the last-active business
//     (Redis or in-memory), best-effort by design
//   - pkg/resolver: the central state machine turning identity events into
//     a resolved business context
//   - pkg/paths: tenant-scoped storage path derivation
//   - pkg/access: role-based permission evaluation
//   - pkg/bridge: the legacy-shaped adapter for older feature components
//   - pkg/logger, pkg/config: logging and configuration conventions
//
// # Wiring
//
//	var mongoCfg business.Config
//	config.MustLoad(&mongoCfg)
//	client, err := business.Connect(ctx, mongoCfg)
//	if err != nil {
//		// handle
//	}
//	repo := business.NewMongoRepository(client, mongoCfg)
//
//	var redisCfg sessionstore.Config
//	config.MustLoad(&redisCfg)
//	rdb, err := sessionstore.Connect(ctx, redisCfg)
//	if err != nil {
//		// handle
//	}
//	store := sessionstore.NewRedisStore(rdb, redisCfg.RecordTTL)
//	records := sessionstore.NewRecords(store, sessionKey, log)
//
//	r := resolver.New(repo, records, resolver.WithLogger(log))
//	b := bridge.New(r, access.NewEvaluator())
//
//	// On every identity event from the provider:
//	r.Resolve(ctx, currentIdentity)
//
//	// Feature components read b.Context().
package bizctx
