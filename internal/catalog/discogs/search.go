package discogs

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
	searchPath = "/database/search"

	diagnosticLimit = 512
)

// Search queries Discogs for album releases matching the query and
// normalizes the first 20 results. The query is constrained to master
// releases in the physical album format to cut singles and compilations
// out of the results. Failures are never retried.
//
// Discogs serves HTML error pages for some failure modes; any payload that
// does not parse as the expected envelope is wrapped as an upstream
// diagnostic rather than crashing the search.
func (c *Client) Search(ctx context.Context, query string) ([]domain.MediaItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "master")
	params.Set("format", "album")

	searchURL := c.baseURL + searchPath + "?" + params.Encode()

	c.logger.Debug("searching Discogs", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Discogs token="+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "album search request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "read album search response")
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

		var rel releaseResult
		if err := json.Unmarshal(raw, &rel); err != nil {
			c.logger.Warn("skipping undecodable Discogs record", "error", err)
			continue
		}

		items = append(items, domain.MediaItem{
			ID:       strconv.FormatInt(rel.ID, 10),
			Type:     domain.MediaTypeAlbum,
			Title:    rel.Title,
			Subtitle: releaseSubtitle(rel),
			Image:    coverURL(rel),
			Raw:      raw,
		})
	}

	c.logger.Debug("Discogs search results", "query", query, "count", len(items))

	return items, nil
}

// releaseSubtitle prefers a 4-digit year, falls back to the first listed
// format string, else empty.
func releaseSubtitle(rel releaseResult) string {
	if isYear(rel.Year) {
		return "(" + rel.Year + ")"
	}
	if len(rel.Format) > 0 {
		return rel.Format[0]
	}
	return ""
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// coverURL prefers the full cover image over the thumbnail.
func coverURL(rel releaseResult) string {
	if rel.CoverImage != "" {
		return rel.CoverImage
	}
	return rel.Thumb
}

// snippet trims an upstream body to a loggable diagnostic.
func snippet(body []byte) string {
	if len(body) > diagnosticLimit {
		body = body[:diagnosticLimit]
	}
	return string(body)
}
