package googlebooks

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/curatorapp/curator-server/internal/catalog"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
)

const (
	searchPath = "/books/v1/volumes"

	// untitledPlaceholder stands in for volumes with no title at all.
	untitledPlaceholder = "Untitled"

	diagnosticLimit = 512
)

// Search queries Google Books for volumes matching the query and normalizes
// the first 20 results. Failures are never retried.
func (c *Client) Search(ctx context.Context, query string) ([]domain.MediaItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(catalog.MaxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := c.baseURL + searchPath + "?" + params.Encode()

	c.logger.Debug("searching Google Books", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "book search request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstream, "read book search response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Upstream(resp.StatusCode, snippet(body))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, errors.UpstreamParse(resp.StatusCode, snippet(body)).WithCause(err)
	}

	items := make([]domain.MediaItem, 0, min(len(searchResp.Items), catalog.MaxResults))
	for _, raw := range searchResp.Items {
		if len(items) == catalog.MaxResults {
			break
		}

		var v volumeResult
		if err := json.Unmarshal(raw, &v); err != nil {
			c.logger.Warn("skipping undecodable Google Books record", "error", err)
			continue
		}

		title := v.VolumeInfo.Title
		if title == "" {
			title = untitledPlaceholder
		}

		items = append(items, domain.MediaItem{
			ID:       v.ID,
			Type:     domain.MediaTypeBook,
			Title:    title,
			Subtitle: strings.Join(v.VolumeInfo.Authors, ", "),
			Image:    coverURL(v.VolumeInfo.ImageLinks),
			Raw:      raw,
		})
	}

	c.logger.Debug("Google Books search results", "query", query, "count", len(items))

	return items, nil
}

// coverURL prefers the full thumbnail over the small one.
func coverURL(links imageLinks) string {
	if links.Thumbnail != "" {
		return links.Thumbnail
	}
	return links.SmallThumbnail
}

// snippet trims an upstream body to a loggable diagnostic.
func snippet(body []byte) string {
	if len(body) > diagnosticLimit {
		body = body[:diagnosticLimit]
	}
	return string(body)
}
