// Package di provides dependency injection configuration for the Curator
// server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/curatorapp/curator-server/internal/di/providers"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Persistence layer
	do.Provide(injector, providers.ProvideBackend)
	do.Provide(injector, providers.ProvideFavorites)
	do.Provide(injector, providers.ProvideInstance)

	// Catalog layer
	do.Provide(injector, providers.ProvideCatalogRegistry)

	// Business services
	do.Provide(injector, providers.ProvideSearchService)
	do.Provide(injector, providers.ProvideFavoritesService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services eagerly so configuration and storage
// problems surface at startup rather than on first request.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*providers.BackendHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
