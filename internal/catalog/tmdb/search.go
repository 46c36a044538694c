package tmdb

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/curatorapp/curator-server/internal/catalog"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
)

const (
	searchPath = "/3/search/movie"

	// posterBaseURL is the fixed width preset used for artwork.
	posterBaseURL = "https://image.tmdb.org/t/p/w342"

	// diagnosticLimit caps how much of an upstream body is kept for logs.
	diagnosticLimit = 512
)

// Search queries TMDB for movies matching the query and normalizes the
// first 20 results. Failures are never retried.
func (c *Client) Search(ctx context.Context, query string) ([]domain.MediaItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)

	searchURL := c.baseURL + searchPath + "?" + params.Encode()

	c.logger.Debug("searching TMDB", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "movie search request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "read movie search response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Upstream(resp.StatusCode, snippet(body))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, errors.UpstreamParse(resp.StatusCode, snippet(body)).WithCause(err)
	}

	items := make([]domain.MediaItem, 0, min(len(searchResp.Results), catalog.MaxResults))
	for _, raw := range searchResp.Results {
		if len(items) == catalog.MaxResults {
			break
		}

		var m movieResult
		if err := json.Unmarshal(raw, &m); err != nil {
			c.logger.Warn("skipping undecodable TMDB record", "error", err)
			continue
		}

		items = append(items, domain.MediaItem{
			ID:       strconv.FormatInt(m.ID, 10),
			Type:     domain.MediaTypeMovie,
			Title:    m.Title,
			Subtitle: releaseYear(m.ReleaseDate),
			Image:    posterURL(m.PosterPath),
			Raw:      raw,
		})
	}

	c.logger.Debug("TMDB search results", "query", query, "count", len(items))

	return items, nil
}

// releaseYear extracts the 4-digit year from a release-date string like
// "2022-03-04" and formats it "(2022)". Returns empty when no year leads
// the string.
func releaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return "(" + date[:4] + ")"
}

// posterURL builds the full artwork URL from a poster-path fragment.
func posterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return posterBaseURL + posterPath
}

// snippet trims an upstream body to a loggable diagnostic.
func snippet(body []byte) string {
	if len(body) > diagnosticLimit {
		body = body[:diagnosticLimit]
	}
	return string(body)
}
