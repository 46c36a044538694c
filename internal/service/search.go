// Package service holds the application services between the HTTP handlers
// and the catalog clients and stores.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/curatorapp/curator-server/internal/catalog"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
)

// categories maps the URL category segment to its media type. The plural
// forms are the public API surface; everything internal speaks MediaType.
var categories = map[string]domain.MediaType{
	"movies": domain.MediaTypeMovie,
	"books":  domain.MediaTypeBook,
	"albums": domain.MediaTypeAlbum,
}

// ParseCategory resolves a URL category segment to its media type. Unknown
// categories are a hard validation error, never silently remapped.
func ParseCategory(category string) (domain.MediaType, error) {
	if t, ok := categories[category]; ok {
		return t, nil
	}
	return "", errors.Validationf("unknown category %q, expected movies, books, or albums", category)
}

// SearchService dispatches a category search to the matching catalog
// provider and returns the normalized results.
type SearchService struct {
	registry *catalog.Registry
	logger   *slog.Logger
}

// NewSearchService creates a search service over the given provider registry.
func NewSearchService(registry *catalog.Registry, logger *slog.Logger) *SearchService {
	return &SearchService{
		registry: registry,
		logger:   logger,
	}
}

// Search validates the inputs, resolves the provider for the category, and
// runs the query. The query is trimmed before the empty check so whitespace
// does not reach a provider. An unconfigured provider fails here with its
// startup configuration error, before any network traffic.
func (s *SearchService) Search(ctx context.Context, category, query string) ([]domain.MediaItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Validation("Missing query param q")
	}

	mediaType, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	provider, err := s.registry.Provider(mediaType)
	if err != nil {
		s.logger.Warn("provider unavailable", "category", category, "error", err)
		return nil, err
	}

	items, err := provider.Search(ctx, query)
	if err != nil {
		s.logger.Error("catalog search failed", "category", category, "query", query, "error", err)
		return nil, err
	}

	s.logger.Debug("catalog search completed", "category", category, "query", query, "results", len(items))
	return items, nil
}
