package service

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"log/slog"

	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
	"github.com/curatorapp/curator-server/internal/store"
	"github.com/curatorapp/curator-server/internal/validation"
)

// AddFavoriteParams is the payload for saving an item to favorites. It
// mirrors the search result schema. Raw is typed any rather than
// jsontext.Value so the request schema admits arbitrary JSON; the service
// re-encodes it before persisting. Every field is optional at the schema
// level: presence checks belong to the validator so an incomplete payload
// is a 400 validation error, not a schema rejection.
type AddFavoriteParams struct {
	ID       string `json:"id" required:"false" validate:"required"`
	Type     string `json:"type" required:"false" validate:"required,oneof=movie book album"`
	Title    string `json:"title" required:"false" validate:"required"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Raw      any    `json:"raw,omitempty"`
}

// FavoritesService exposes the favorites collection to the HTTP layer,
// validating payloads before they reach the store.
type FavoritesService struct {
	store     *store.Favorites
	validator *validation.Validator
	logger    *slog.Logger
}

// NewFavoritesService creates a favorites service.
func NewFavoritesService(favorites *store.Favorites, validator *validation.Validator, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{
		store:     favorites,
		validator: validator,
		logger:    logger,
	}
}

// List returns the persisted collection, empty when nothing is saved yet.
func (s *FavoritesService) List() *domain.FavoritesCollection {
	return s.store.Load()
}

// Add validates and saves an item, returning the updated collection.
func (s *FavoritesService) Add(params AddFavoriteParams) (*domain.FavoritesCollection, error) {
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	var raw jsontext.Value
	if params.Raw != nil {
		encoded, err := json.Marshal(params.Raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeValidation, "raw field is not valid JSON")
		}
		raw = encoded
	}

	return s.store.Add(domain.MediaItem{
		ID:       params.ID,
		Type:     domain.MediaType(params.Type),
		Title:    params.Title,
		Subtitle: params.Subtitle,
		Image:    params.Image,
		Raw:      raw,
	})
}

// Remove drops the item with the given id from the named category and
// returns the updated collection. The category is the singular media type,
// matching the type field items carry.
func (s *FavoritesService) Remove(mediaType, id string) (*domain.FavoritesCollection, error) {
	return s.store.Remove(domain.MediaType(mediaType), id)
}

// Clear discards all saved favorites.
func (s *FavoritesService) Clear() error {
	return s.store.Clear()
}
