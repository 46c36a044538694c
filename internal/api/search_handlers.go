package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/curatorapp/curator-server/internal/domain"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/search/{category}",
		Summary:     "Search a catalog",
		Description: "Searches the external catalog for the given category and returns normalized results",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains parameters for a catalog search. The query is left
// unconstrained here so empty values reach the service, which owns the
// validation message.
type SearchInput struct {
	Category string `path:"category" doc:"Catalog to search: movies, books, or albums"`
	Query    string `query:"q" doc:"Free-text search query"`
}

// SearchResponse contains the normalized search results.
type SearchResponse struct {
	Items []domain.MediaItem `json:"items" doc:"Normalized results, upstream order, capped at 20"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	items, err := s.services.Search.Search(ctx, input.Category, input.Query)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MediaItem{}
	}

	return &SearchOutput{
		Body: SearchResponse{Items: items},
	}, nil
}
