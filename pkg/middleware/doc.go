// Package middleware provides optional instrumentation wrappers around the
// router's Matcher interface.
//
// The wrappers are decorators: they add observability without touching the
// matching semantics, and they compose.
//
//	m := middleware.Prometheus(
//	    middleware.OpenTelemetry(router.NewResolver(c)),
//	)
//
// The core owns no metrics endpoint and no exporter; exposing the collected
// data is the embedding application's job.
package middleware
