// Package ratelimit provides a token bucket limiter for outbound catalog
// requests. It supports both non-blocking (Allow) and blocking (Wait)
// operations.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps a token bucket used to pace requests against one upstream
// catalog. Each catalog client owns its own Limiter; buckets are never shared
// across providers.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a limiter allowing rps requests per second with the given
// burst size (tokens available immediately).
func New(rps float64, burst int) *Limiter {
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request is allowed or the context is canceled.
// Use for outbound requests where upstream quotas must be respected.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}

// Allow reports whether a request may proceed right now, without blocking.
func (l *Limiter) Allow() bool {
	return l.bucket.Allow()
}
