package tmdb

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/ratelimit"
)

const (
	defaultBaseURL = "https://api.themoviedb.org"
	defaultTimeout = 15 * time.Second

	// TMDB tolerates ~50 req/s; stay far below it.
	defaultRPS   = 4.0
	defaultBurst = 8
)

// Client is a rate-limited TMDB search client. A constructed Client is
// guaranteed usable: New rejects missing credentials, so a missing API key
// can never reach the network.
type Client struct {
	http    *http.Client
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	apiKey  string
	baseURL string
}

// New creates a TMDB client from validated configuration.
func New(cfg config.TMDBConfig, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		apiKey:  cfg.APIKey,
		baseURL: defaultBaseURL,
	}, nil
}
