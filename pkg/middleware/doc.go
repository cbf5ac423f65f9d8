// Package middleware provides navigation middleware for the Folio router.
//
// This package includes:
//   - Prometheus metrics for dispatched navigations and route errors
//   - OpenTelemetry spans for navigations
//   - Structured navigation logging with log/slog
//
// Every constructor returns a router.Middleware, so they run after all
// guards allowed a navigation and before its handler:
//
//	r.AddMiddleware(middleware.Logging(logger))
//	r.AddMiddleware(middleware.Prometheus(middleware.WithNamespace("folio")))
//	r.AddMiddleware(middleware.OpenTelemetry(middleware.WithTracerName("folio")))
//
// # Prometheus Metrics
//
//   - folio_navigations_total: navigations that passed the guards, by pattern
//   - folio_route_changes_total: successful dispatches, by path (see ObserveRouter)
//   - folio_route_errors_total: route errors by type (see RecordRouteError)
//
// Expose them with promhttp in whatever process hosts the registry.
package middleware
