// Package catalog defines the provider abstraction for external media
// catalogs and the registry that maps media types to configured providers.
package catalog

import (
	"context"

	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/errors"
)

// MaxResults is the cap applied to every provider search, preserving the
// upstream ordering (assumed relevance-ranked by the provider).
const MaxResults = 20

// Provider is implemented by each catalog client. Search returns normalized
// items for a non-empty query; input trimming and validation belong to the
// caller, not the provider.
type Provider interface {
	Search(ctx context.Context, query string) ([]domain.MediaItem, error)
}

// Registry maps media types to their configured providers. Providers whose
// credentials failed validation at startup are registered as unavailable,
// so their configuration error surfaces on use without any network call.
type Registry struct {
	providers   map[domain.MediaType]Provider
	unavailable map[domain.MediaType]error
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers:   make(map[domain.MediaType]Provider),
		unavailable: make(map[domain.MediaType]error),
	}
}

// Register makes p the provider for media type t.
func (r *Registry) Register(t domain.MediaType, p Provider) {
	r.providers[t] = p
	delete(r.unavailable, t)
}

// RegisterUnavailable records that the provider for t could not be
// constructed. err is returned verbatim from Provider lookups.
func (r *Registry) RegisterUnavailable(t domain.MediaType, err error) {
	r.unavailable[t] = err
	delete(r.providers, t)
}

// Provider returns the provider for t, or the configuration error recorded
// at startup.
func (r *Registry) Provider(t domain.MediaType) (Provider, error) {
	if p, ok := r.providers[t]; ok {
		return p, nil
	}
	if err, ok := r.unavailable[t]; ok {
		return nil, err
	}
	return nil, errors.Configf("no provider configured for media type %q", t)
}
