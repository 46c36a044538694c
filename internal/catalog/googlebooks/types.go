// Package googlebooks provides a client for searching books on the Google
// Books volumes API.
package googlebooks

import "encoding/json/jsontext"

// searchResponse is the raw volumes envelope. Items are kept as raw JSON so
// each record can be retained untouched on the normalized item. The items
// key is absent entirely when nothing matched.
type searchResponse struct {
	TotalItems int              `json:"totalItems"`
	Items      []jsontext.Value `json:"items"`
}

// volumeResult is a single volume record.
type volumeResult struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title      string     `json:"title"`
	Authors    []string   `json:"authors"`
	ImageLinks imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
