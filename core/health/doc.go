// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	mux.HandleFunc("GET /live", health.Liveness)
//	mux.HandleFunc("GET /ready", health.Readiness(log, registryReady))
//
// Dependency checks follow the func(context.Context) error signature:
//
//	func registryReady(ctx context.Context) error {
//		if registry.Len() == 0 {
//			return errors.New("no command handlers registered")
//		}
//		return nil
//	}
package health
