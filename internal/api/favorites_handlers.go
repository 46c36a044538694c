package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/service"
)

func (s *Server) registerFavoritesRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/favorites",
		Summary:     "List favorites",
		Description: "Returns the saved favorites for all three categories",
		Tags:        []string{"Favorites"},
	}, s.handleListFavorites)

	huma.Register(s.api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPost,
		Path:        "/api/favorites",
		Summary:     "Add a favorite",
		Description: "Saves a search result to its category, max 5 per category",
		Tags:        []string{"Favorites"},
	}, s.handleAddFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/api/favorites/{type}/{id}",
		Summary:     "Remove a favorite",
		Description: "Removes the item from its category; removing an absent item succeeds",
		Tags:        []string{"Favorites"},
	}, s.handleRemoveFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID:   "clearFavorites",
		Method:        http.MethodDelete,
		Path:          "/api/favorites",
		Summary:       "Clear favorites",
		Description:   "Discards all saved favorites across all categories",
		Tags:          []string{"Favorites"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleClearFavorites)
}

// === DTOs ===

// FavoritesOutput wraps the favorites collection for Huma.
type FavoritesOutput struct {
	Body domain.FavoritesCollection
}

// AddFavoriteInput contains the item to save.
type AddFavoriteInput struct {
	Body service.AddFavoriteParams
}

// RemoveFavoriteInput identifies the item to remove.
type RemoveFavoriteInput struct {
	Type string `path:"type" doc:"Media type: movie, book, or album"`
	ID   string `path:"id" doc:"Item id within the category"`
}

// === Handlers ===

func (s *Server) handleListFavorites(_ context.Context, _ *struct{}) (*FavoritesOutput, error) {
	return &FavoritesOutput{Body: *s.services.Favorites.List()}, nil
}

func (s *Server) handleAddFavorite(_ context.Context, input *AddFavoriteInput) (*FavoritesOutput, error) {
	collection, err := s.services.Favorites.Add(input.Body)
	if err != nil {
		return nil, err
	}
	return &FavoritesOutput{Body: *collection}, nil
}

func (s *Server) handleRemoveFavorite(_ context.Context, input *RemoveFavoriteInput) (*FavoritesOutput, error) {
	collection, err := s.services.Favorites.Remove(input.Type, input.ID)
	if err != nil {
		return nil, err
	}
	return &FavoritesOutput{Body: *collection}, nil
}

func (s *Server) handleClearFavorites(_ context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.services.Favorites.Clear(); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
