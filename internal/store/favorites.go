package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/curatorapp/curator-server/internal/domain"
	domainerrors "github.com/curatorapp/curator-server/internal/errors"
)

// favoritesKey is the single storage entry holding the whole favorites
// document: a JSON object with exactly the keys movie, book, and album.
const favoritesKey = "favorites"

// Favorites persists the per-category favorites collection. Every mutation
// is a read-modify-write of the whole document, serialized by a mutex so
// concurrent handlers cannot lose updates.
type Favorites struct {
	mu      sync.Mutex
	backend Backend
	logger  *slog.Logger
}

// NewFavorites creates a favorites store on the given backend.
func NewFavorites(backend Backend, logger *slog.Logger) *Favorites {
	return &Favorites{backend: backend, logger: logger}
}

// Load returns the persisted collection. Absent or unparseable state yields
// an empty collection for all three categories; corrupt data is discarded,
// never repaired, and overwritten on the next successful write.
func (f *Favorites) Load() *domain.FavoritesCollection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// load reads the document without locking; callers hold f.mu.
func (f *Favorites) load() *domain.FavoritesCollection {
	data, err := f.backend.Get(favoritesKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) && f.logger != nil {
			f.logger.Warn("failed to read favorites, starting empty", "error", err)
		}
		return domain.NewFavoritesCollection()
	}

	var collection domain.FavoritesCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		if f.logger != nil {
			f.logger.Warn("discarding corrupt favorites document", "error", err)
		}
		return domain.NewFavoritesCollection()
	}

	collection.Normalize()
	return &collection
}

// save writes the whole document as one full replace; callers hold f.mu.
func (f *Favorites) save(collection *domain.FavoritesCollection) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := f.backend.Set(favoritesKey, data); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// Add appends item to its category. It fails with a duplicate error when an
// item with the same id is already saved in that category, and a capacity
// error when the category is full. On failure nothing is written.
func (f *Favorites) Add(item domain.MediaItem) (*domain.FavoritesCollection, error) {
	if !item.Type.Valid() {
		return nil, domainerrors.Validationf("unknown media type %q", item.Type)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	collection := f.load()

	if collection.Contains(item.Type, item.ID) {
		return nil, domainerrors.Duplicatef("%q is already in your %s favorites", item.Title, item.Type)
	}

	category, _ := collection.Category(item.Type)
	if len(category) >= domain.FavoritesCapacity {
		return nil, domainerrors.Capacityf("%s favorites is full (max %d)", item.Type, domain.FavoritesCapacity)
	}

	collection.Append(item)
	if err := f.save(collection); err != nil {
		return nil, err
	}

	if f.logger != nil {
		f.logger.Info("favorite added", "type", item.Type, "id", item.ID, "title", item.Title)
	}
	return collection, nil
}

// Remove drops every item with the given id from the category. Removing an
// absent id is a no-op that still succeeds and returns the collection.
func (f *Favorites) Remove(t domain.MediaType, id string) (*domain.FavoritesCollection, error) {
	if !t.Valid() {
		return nil, domainerrors.Validationf("unknown media type %q", t)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	collection := f.load()
	collection.Drop(t, id)

	if err := f.save(collection); err != nil {
		return nil, err
	}

	if f.logger != nil {
		f.logger.Info("favorite removed", "type", t, "id", id)
	}
	return collection, nil
}

// Clear discards all persisted favorites across all categories. Idempotent.
func (f *Favorites) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.backend.Delete(favoritesKey); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}

	if f.logger != nil {
		f.logger.Info("favorites cleared")
	}
	return nil
}
