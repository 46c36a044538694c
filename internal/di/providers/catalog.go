package providers

import (
	"github.com/samber/do/v2"

	"github.com/curatorapp/curator-server/internal/catalog"
	"github.com/curatorapp/curator-server/internal/catalog/discogs"
	"github.com/curatorapp/curator-server/internal/catalog/googlebooks"
	"github.com/curatorapp/curator-server/internal/catalog/tmdb"
	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/logger"
)

// ProvideCatalogRegistry provides the provider registry with every catalog
// client whose credentials validate. A client that fails construction is
// registered as unavailable: the server still boots and the affected
// category reports the configuration error on use.
func ProvideCatalogRegistry(i do.Injector) (*catalog.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	registry := catalog.NewRegistry()

	if client, err := tmdb.New(cfg.TMDB, log.Logger); err != nil {
		log.Warn("movie catalog unavailable", "error", err)
		registry.RegisterUnavailable(domain.MediaTypeMovie, err)
	} else {
		registry.Register(domain.MediaTypeMovie, client)
		log.Info("movie catalog initialized")
	}

	if client, err := googlebooks.New(cfg.GoogleBooks, log.Logger); err != nil {
		log.Warn("book catalog unavailable", "error", err)
		registry.RegisterUnavailable(domain.MediaTypeBook, err)
	} else {
		registry.Register(domain.MediaTypeBook, client)
		log.Info("book catalog initialized")
	}

	if client, err := discogs.New(cfg.Discogs, log.Logger); err != nil {
		log.Warn("album catalog unavailable", "error", err)
		registry.RegisterUnavailable(domain.MediaTypeAlbum, err)
	} else {
		registry.Register(domain.MediaTypeAlbum, client)
		log.Info("album catalog initialized")
	}

	return registry, nil
}
