// Package ratelimit holds the throttles that protect the remote dictionary:
// a min-interval gate owned by one client and a per-key cooldown.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate spaces successive callers by at least a fixed interval.
// A zero or negative interval disables it. Safe for concurrent use.
type Gate struct {
	limiter *rate.Limiter
}

// NewGate creates a Gate that lets one caller through per interval.
// The first caller is never delayed.
func NewGate(interval time.Duration) *Gate {
	if interval <= 0 {
		return &Gate{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Gate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the caller may proceed or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
