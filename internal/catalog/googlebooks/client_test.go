package googlebooks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, cfg config.GoogleBooksConfig, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(cfg, testLogger())
	require.NoError(t, err)
	client.http = server.Client()
	client.baseURL = server.URL

	return client
}

func TestSearch_NormalizesResults(t *testing.T) {
	client := newTestClient(t, config.GoogleBooksConfig{}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dune", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))
		// No key configured, none sent.
		assert.Empty(t, r.URL.Query().Get("key"))

		fmt.Fprint(w, `{
			"totalItems": 3,
			"items": [
				{"id": "B1", "volumeInfo": {"title": "Dune", "authors": ["Frank Herbert"], "imageLinks": {"thumbnail": "http://books.google.com/full.jpg", "smallThumbnail": "http://books.google.com/small.jpg"}}},
				{"id": "B2", "volumeInfo": {"title": "Dune Companion", "authors": ["A. One", "B. Two"], "imageLinks": {"smallThumbnail": "http://books.google.com/small2.jpg"}}},
				{"id": "B3", "volumeInfo": {}}
			]
		}`)
	})

	items, err := client.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "B1", items[0].ID)
	assert.Equal(t, domain.MediaTypeBook, items[0].Type)
	assert.Equal(t, "Dune", items[0].Title)
	assert.Equal(t, "Frank Herbert", items[0].Subtitle)
	// Full thumbnail preferred over the small one.
	assert.Equal(t, "http://books.google.com/full.jpg", items[0].Image)

	assert.Equal(t, "A. One, B. Two", items[1].Subtitle)
	assert.Equal(t, "http://books.google.com/small2.jpg", items[1].Image)

	// Missing title falls back to the placeholder; no authors, no image.
	assert.Equal(t, "Untitled", items[2].Title)
	assert.Empty(t, items[2].Subtitle)
	assert.Empty(t, items[2].Image)
}

func TestSearch_SendsOptionalKey(t *testing.T) {
	client := newTestClient(t, config.GoogleBooksConfig{APIKey: "quota-key"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "quota-key", r.URL.Query().Get("key"))
		fmt.Fprint(w, `{"totalItems": 0}`)
	})

	_, err := client.Search(context.Background(), "dune")
	require.NoError(t, err)
}

func TestSearch_EmptyResults(t *testing.T) {
	// Google Books omits the items key entirely at zero matches.
	client := newTestClient(t, config.GoogleBooksConfig{}, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"totalItems": 0}`)
	})

	items, err := client.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearch_UpstreamError(t *testing.T) {
	client := newTestClient(t, config.GoogleBooksConfig{}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "Rate limit exceeded"}}`)
	})

	_, err := client.Search(context.Background(), "dune")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUpstream)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(*errors.UpstreamDetails)
	assert.Equal(t, http.StatusTooManyRequests, details.Status)
}
