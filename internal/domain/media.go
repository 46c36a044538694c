// Package domain contains the core types shared across the Curator server.
package domain

import (
	"encoding/json/jsontext"
	"slices"
)

// MediaType identifies which catalog a MediaItem came from.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeBook  MediaType = "book"
	MediaTypeAlbum MediaType = "album"
)

// MediaTypes lists every valid media type in canonical order.
func MediaTypes() []MediaType {
	return []MediaType{MediaTypeMovie, MediaTypeBook, MediaTypeAlbum}
}

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	return slices.Contains(MediaTypes(), t)
}

// MediaItem is the canonical, provider-agnostic record all search results are
// normalized into. IDs are opaque strings, unique within a provider but not
// across providers; (Type, ID) identifies an item within the favorites
// collection.
type MediaItem struct {
	ID       string    `json:"id"`
	Type     MediaType `json:"type"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Image    string    `json:"image,omitempty"`

	// Raw is the untouched upstream record, retained for future use and
	// never interpreted by the server.
	Raw jsontext.Value `json:"raw,omitempty"`
}

// FavoritesCollection maps each media type to its ordered list of saved items.
// Insertion order is preserved; each category is capped at FavoritesCapacity.
type FavoritesCollection struct {
	Movies []MediaItem `json:"movie"`
	Books  []MediaItem `json:"book"`
	Albums []MediaItem `json:"album"`
}

// FavoritesCapacity is the maximum number of items allowed per category.
const FavoritesCapacity = 5

// NewFavoritesCollection returns an empty collection with all three
// categories initialized, so the persisted document always carries exactly
// the keys movie, book, and album.
func NewFavoritesCollection() *FavoritesCollection {
	return &FavoritesCollection{
		Movies: []MediaItem{},
		Books:  []MediaItem{},
		Albums: []MediaItem{},
	}
}

// Category returns the item list for the given media type. The second return
// value is false for unknown types.
func (c *FavoritesCollection) Category(t MediaType) ([]MediaItem, bool) {
	switch t {
	case MediaTypeMovie:
		return c.Movies, true
	case MediaTypeBook:
		return c.Books, true
	case MediaTypeAlbum:
		return c.Albums, true
	default:
		return nil, false
	}
}

// setCategory replaces the item list for the given media type.
func (c *FavoritesCollection) setCategory(t MediaType, items []MediaItem) {
	switch t {
	case MediaTypeMovie:
		c.Movies = items
	case MediaTypeBook:
		c.Books = items
	case MediaTypeAlbum:
		c.Albums = items
	}
}

// Contains reports whether the category for t already holds an item with the
// given id. Comparison is string equality on ID only.
func (c *FavoritesCollection) Contains(t MediaType, id string) bool {
	items, ok := c.Category(t)
	if !ok {
		return false
	}
	return slices.ContainsFunc(items, func(it MediaItem) bool { return it.ID == id })
}

// Append adds an item to the end of its category. Callers are responsible for
// the duplicate and capacity checks; Append itself only preserves ordering.
func (c *FavoritesCollection) Append(item MediaItem) {
	items, ok := c.Category(item.Type)
	if !ok {
		return
	}
	c.setCategory(item.Type, append(items, item))
}

// Drop removes every item with the given id from the category for t. Removing
// an id that is not present is a no-op.
func (c *FavoritesCollection) Drop(t MediaType, id string) {
	items, ok := c.Category(t)
	if !ok {
		return
	}
	c.setCategory(t, slices.DeleteFunc(items, func(it MediaItem) bool { return it.ID == id }))
}

// Normalize ensures no category slice is nil, so an unmarshaled or partially
// populated collection always serializes with all three keys present.
func (c *FavoritesCollection) Normalize() {
	if c.Movies == nil {
		c.Movies = []MediaItem{}
	}
	if c.Books == nil {
		c.Books = []MediaItem{}
	}
	if c.Albums == nil {
		c.Albums = []MediaItem{}
	}
}
