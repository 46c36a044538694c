package discogs

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/ratelimit"
)

const (
	defaultBaseURL = "https://api.discogs.com"
	defaultTimeout = 15 * time.Second

	// Discogs allows 60 authenticated requests per minute.
	defaultRPS   = 1.0
	defaultBurst = 3
)

// Client is a rate-limited Discogs search client. A constructed Client is
// guaranteed usable: New rejects a missing token or user agent, so missing
// credentials can never reach the network.
type Client struct {
	http      *http.Client
	limiter   *ratelimit.Limiter
	logger    *slog.Logger
	token     string
	userAgent string
	baseURL   string
}

// New creates a Discogs client from validated configuration.
func New(cfg config.DiscogsConfig, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:   ratelimit.New(defaultRPS, defaultBurst),
		logger:    logger,
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		baseURL:   defaultBaseURL,
	}, nil
}
