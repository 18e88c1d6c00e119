// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: all dependency checks pass, 503 otherwise
//   - NoContent: returns 204 for minimal overhead
//
// Usage:
//
//	r.Get("/health/live", adapt(health.Liveness[*web.Context]))
//	r.Get("/health/ready", adapt(health.Readiness[*web.Context](log, assetsReadable)))
package health
