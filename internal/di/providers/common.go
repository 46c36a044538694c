// Package providers contains dependency injection providers for the Curator
// server.
package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
	shutdownTimeout = 30 * time.Second

	// serverVersion is reported by the instance endpoint.
	// TODO: stamp from the release pipeline via ldflags.
	serverVersion = "1.0.0"
)
