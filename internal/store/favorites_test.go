package store

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorapp/curator-server/internal/domain"
	domainerrors "github.com/curatorapp/curator-server/internal/errors"
)

func newTestFavorites(t *testing.T) (*Favorites, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return NewFavorites(backend, slog.New(slog.DiscardHandler)), backend
}

func movieItem(id, title string) domain.MediaItem {
	return domain.MediaItem{ID: id, Type: domain.MediaTypeMovie, Title: title}
}

func TestFavorites_LoadEmpty(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	collection := favorites.Load()

	require.NotNil(t, collection)
	assert.Empty(t, collection.Movies)
	assert.Empty(t, collection.Books)
	assert.Empty(t, collection.Albums)
	// Categories must be initialized, not nil, so the persisted document
	// always serializes with all three keys.
	assert.NotNil(t, collection.Movies)
	assert.NotNil(t, collection.Books)
	assert.NotNil(t, collection.Albums)
}

func TestFavorites_AddAndPersist(t *testing.T) {
	favorites, backend := newTestFavorites(t)

	collection, err := favorites.Add(movieItem("603", "The Matrix"))
	require.NoError(t, err)
	require.Len(t, collection.Movies, 1)
	assert.Equal(t, "603", collection.Movies[0].ID)

	// The mutation must hit the backend, not just the in-memory view.
	_, ok := backend.Snapshot()[favoritesKey]
	assert.True(t, ok)

	// A fresh store on the same backend sees the same state.
	reloaded := NewFavorites(backend, slog.New(slog.DiscardHandler)).Load()
	require.Len(t, reloaded.Movies, 1)
	assert.Equal(t, "The Matrix", reloaded.Movies[0].Title)
}

func TestFavorites_AddDuplicate(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	_, err := favorites.Add(movieItem("603", "The Matrix"))
	require.NoError(t, err)

	_, err = favorites.Add(movieItem("603", "The Matrix"))
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrDuplicate))

	collection := favorites.Load()
	assert.Len(t, collection.Movies, 1)
}

func TestFavorites_AddSameIDAcrossCategories(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	// IDs are only unique within a provider, so the same id in another
	// category is not a duplicate.
	_, err := favorites.Add(domain.MediaItem{ID: "42", Type: domain.MediaTypeMovie, Title: "A Movie"})
	require.NoError(t, err)
	_, err = favorites.Add(domain.MediaItem{ID: "42", Type: domain.MediaTypeBook, Title: "A Book"})
	require.NoError(t, err)

	collection := favorites.Load()
	assert.Len(t, collection.Movies, 1)
	assert.Len(t, collection.Books, 1)
}

func TestFavorites_AddCapacity(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	for i := 0; i < domain.FavoritesCapacity; i++ {
		_, err := favorites.Add(movieItem(fmt.Sprintf("m%d", i), fmt.Sprintf("Movie %d", i)))
		require.NoError(t, err)
	}

	_, err := favorites.Add(movieItem("overflow", "One Too Many"))
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrCapacity))

	// The rejected add leaves the category untouched, content and order.
	collection := favorites.Load()
	require.Len(t, collection.Movies, domain.FavoritesCapacity)
	for i, item := range collection.Movies {
		assert.Equal(t, fmt.Sprintf("m%d", i), item.ID)
	}

	// Other categories are unaffected by a full movies list.
	_, err = favorites.Add(domain.MediaItem{ID: "b1", Type: domain.MediaTypeBook, Title: "Still Room"})
	assert.NoError(t, err)
}

func TestFavorites_AddUnknownType(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	_, err := favorites.Add(domain.MediaItem{ID: "1", Type: "podcast", Title: "Nope"})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestFavorites_RemoveIdempotent(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	_, err := favorites.Add(movieItem("603", "The Matrix"))
	require.NoError(t, err)

	collection, err := favorites.Remove(domain.MediaTypeMovie, "603")
	require.NoError(t, err)
	assert.Empty(t, collection.Movies)

	// Removing an id that is no longer (or never was) present still succeeds.
	collection, err = favorites.Remove(domain.MediaTypeMovie, "603")
	require.NoError(t, err)
	assert.Empty(t, collection.Movies)

	collection, err = favorites.Remove(domain.MediaTypeAlbum, "never-added")
	require.NoError(t, err)
	assert.Empty(t, collection.Albums)
}

func TestFavorites_RemovePreservesOrder(t *testing.T) {
	favorites, _ := newTestFavorites(t)

	for _, id := range []string{"a", "b", "c"} {
		_, err := favorites.Add(movieItem(id, "Movie "+id))
		require.NoError(t, err)
	}

	collection, err := favorites.Remove(domain.MediaTypeMovie, "b")
	require.NoError(t, err)
	require.Len(t, collection.Movies, 2)
	assert.Equal(t, "a", collection.Movies[0].ID)
	assert.Equal(t, "c", collection.Movies[1].ID)
}

func TestFavorites_CorruptDocumentStartsEmpty(t *testing.T) {
	favorites, backend := newTestFavorites(t)

	require.NoError(t, backend.Set(favoritesKey, []byte("{not json")))

	collection := favorites.Load()
	require.NotNil(t, collection)
	assert.Empty(t, collection.Movies)

	// The next successful write replaces the corrupt document.
	_, err := favorites.Add(movieItem("603", "The Matrix"))
	require.NoError(t, err)
	reloaded := favorites.Load()
	assert.Len(t, reloaded.Movies, 1)
}

func TestFavorites_LoadNormalizesMissingCategories(t *testing.T) {
	favorites, backend := newTestFavorites(t)

	// A document written by an older build may lack some category keys.
	require.NoError(t, backend.Set(favoritesKey, []byte(`{"movie":[{"id":"1","type":"movie","title":"Dune"}]}`)))

	collection := favorites.Load()
	require.Len(t, collection.Movies, 1)
	assert.NotNil(t, collection.Books)
	assert.NotNil(t, collection.Albums)
}

func TestFavorites_Clear(t *testing.T) {
	favorites, backend := newTestFavorites(t)

	_, err := favorites.Add(movieItem("603", "The Matrix"))
	require.NoError(t, err)

	require.NoError(t, favorites.Clear())
	_, ok := backend.Snapshot()[favoritesKey]
	assert.False(t, ok)
	assert.Empty(t, favorites.Load().Movies)

	// Clearing an already empty store is a no-op.
	require.NoError(t, favorites.Clear())
}
