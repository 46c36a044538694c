package googlebooks

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/curatorapp/curator-server/internal/config"
	"github.com/curatorapp/curator-server/internal/ratelimit"
)

const (
	defaultBaseURL = "https://www.googleapis.com"
	defaultTimeout = 15 * time.Second

	// Keyless access shares a small quota; pace conservatively.
	defaultRPS   = 1.0
	defaultBurst = 5
)

// Client is a rate-limited Google Books search client. No credential is
// required; an optional API key raises the quota when configured.
type Client struct {
	http    *http.Client
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	apiKey  string
	baseURL string
}

// New creates a Google Books client.
func New(cfg config.GoogleBooksConfig, logger *slog.Logger) (*Client, error) {
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
