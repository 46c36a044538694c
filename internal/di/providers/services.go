package providers

import (
	"github.com/samber/do/v2"

	"github.com/curatorapp/curator-server/internal/catalog"
	"github.com/curatorapp/curator-server/internal/logger"
	"github.com/curatorapp/curator-server/internal/service"
	"github.com/curatorapp/curator-server/internal/store"
	"github.com/curatorapp/curator-server/internal/validation"
)

// ProvideSearchService provides the catalog search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	registry := do.MustInvoke[*catalog.Registry](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSearchService(registry, log.Logger), nil
}

// ProvideFavoritesService provides the favorites service.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	favorites := do.MustInvoke[*store.Favorites](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoritesService(favorites, validator, log.Logger), nil
}
