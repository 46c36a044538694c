// Package discogs provides a client for searching album releases on the
// Discogs database API.
package discogs

import "encoding/json/jsontext"

// searchResponse is the raw Discogs search envelope. Results are kept as raw
// JSON so each record can be retained untouched on the normalized item.
type searchResponse struct {
	Results []jsontext.Value `json:"results"`
}

// releaseResult is a single master-release record from Discogs search.
// Discogs reports year as a string in search payloads.
type releaseResult struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Year       string   `json:"year"`
	Format     []string `json:"format"`
	CoverImage string   `json:"cover_image"`
	Thumb      string   `json:"thumb"`
}
