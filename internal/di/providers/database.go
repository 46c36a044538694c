package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/logger"
	"github.com/curatorapp/curator-server/internal/store"
)

// BackendHandle wraps the Badger backend with shutdown capability.
type BackendHandle struct {
	*store.BadgerBackend
}

// Shutdown implements do.Shutdownable.
func (h *BackendHandle) Shutdown() error {
	return h.Close()
}

// ProvideBackend provides the persistence backend.
func ProvideBackend(i do.Injector) (*BackendHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.Path, "db")
	backend, err := store.NewBadgerBackend(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	return &BackendHandle{BadgerBackend: backend}, nil
}

// ProvideFavorites provides the favorites store.
func ProvideFavorites(i do.Injector) (*store.Favorites, error) {
	backend := do.MustInvoke[*BackendHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return store.NewFavorites(backend.BadgerBackend, log.Logger), nil
}

// ProvideInstance provides the persistent server identity.
func ProvideInstance(i do.Injector) (*domain.Instance, error) {
	cfg := do.MustInvoke[*config.Config](i)
	backend := do.MustInvoke[*BackendHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return store.LoadOrCreateInstance(backend.BadgerBackend, cfg.Server.Name, serverVersion, log.Logger)
}
