package discogs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
)

func testConfig() config.DiscogsConfig {
	return config.DiscogsConfig{Token: "test-token", UserAgent: "CuratorTest/1.0"}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(testConfig(), testLogger())
	require.NoError(t, err)
	client.http = server.Client()
	client.baseURL = server.URL

	return client
}

func TestNew_MissingCredentials(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := New(config.DiscogsConfig{UserAgent: "CuratorTest/1.0"}, testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfig)

	_, err = New(config.DiscogsConfig{Token: "t"}, testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfig)

	// Neither attempt touched the network.
	assert.Zero(t, calls.Load())
}

func TestSearch_NormalizesResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "rumours", q.Get("q"))
		// Master releases in album format only.
		assert.Equal(t, "master", q.Get("type"))
		assert.Equal(t, "album", q.Get("format"))
		assert.Equal(t, "Discogs token=test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "CuratorTest/1.0", r.Header.Get("User-Agent"))

		fmt.Fprint(w, `{
			"results": [
				{"id": 10362, "title": "Fleetwood Mac - Rumours", "year": "1977", "format": ["Vinyl", "LP"], "cover_image": "https://img.discogs.com/full.jpg", "thumb": "https://img.discogs.com/thumb.jpg"},
				{"id": 41021, "title": "Fleetwood Mac - Rumours (Deluxe)", "year": "", "format": ["CD", "Album"], "thumb": "https://img.discogs.com/thumb2.jpg"},
				{"id": 52210, "title": "Obscure Bootleg"}
			]
		}`)
	})

	items, err := client.Search(context.Background(), "rumours")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "10362", items[0].ID)
	assert.Equal(t, domain.MediaTypeAlbum, items[0].Type)
	assert.Equal(t, "Fleetwood Mac - Rumours", items[0].Title)
	assert.Equal(t, "(1977)", items[0].Subtitle)
	assert.Equal(t, "https://img.discogs.com/full.jpg", items[0].Image)
	assert.NotEmpty(t, items[0].Raw)

	// No year: first format string stands in.
	assert.Equal(t, "CD", items[1].Subtitle)
	assert.Equal(t, "https://img.discogs.com/thumb2.jpg", items[1].Image)

	// Nothing to fall back on.
	assert.Empty(t, items[2].Subtitle)
	assert.Empty(t, items[2].Image)
}

func TestSearch_EmptyResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	})

	items, err := client.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearch_HTMLErrorPageTolerated(t *testing.T) {
	// Discogs serves HTML error pages with a 200 under some failure modes;
	// the raw text becomes the diagnostic payload instead of a crash.
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Service temporarily unavailable</h1></body></html>")
	})

	_, err := client.Search(context.Background(), "rumours")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUpstream)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	details, ok := domainErr.Details.(*errors.UpstreamDetails)
	require.True(t, ok)
	assert.Contains(t, details.Body, "Service temporarily unavailable")
}

func TestSearch_UpstreamStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"message": "You are making requests too quickly."}`)
	})

	_, err := client.Search(context.Background(), "rumours")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUpstream)

	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(*errors.UpstreamDetails)
	assert.Equal(t, http.StatusTooManyRequests, details.Status)
}
