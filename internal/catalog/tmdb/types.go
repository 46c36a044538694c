// Package tmdb provides a client for searching movies on The Movie Database.
package tmdb

import "encoding/json/jsontext"

// searchResponse is the raw TMDB search envelope. Results are kept as raw
// JSON so each record can be retained untouched on the normalized item.
type searchResponse struct {
	Page         int              `json:"page"`
	TotalResults int              `json:"total_results"`
	Results      []jsontext.Value `json:"results"`
}

// movieResult is a single movie record from TMDB search.
type movieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}
