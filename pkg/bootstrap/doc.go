// Package bootstrap assembles the initialization payload ("flags") handed to
// the client application and serves it over HTTP.
//
// Flags combine three independently sourced parts:
//
//   - seed material from crypto/rand, encoded as [head, [tail...]]
//   - identifiers from the environment (APP_ID, IDENTITY_POOL_ID, AWS_REGION,
//     PROJECT_ID), with the region falling back to the default AWS config chain
//   - the client descriptor built by the clientinfo package
//
// Handler exposes the payload as an HTML shell (GET /) that embeds the flags
// next to the application entry script, and as JSON (GET /api/bootstrap).
//
//	var cfg bootstrap.Config
//	config.MustLoad(&cfg)
//	cfg, err := bootstrap.ResolveRegion(ctx, cfg, bootstrap.AWSRegionResolver())
//
//	r := chi.NewRouter()
//	r.Mount("/", bootstrap.NewHandler(cfg, bootstrap.WithLogger(log)).Routes())
package bootstrap
