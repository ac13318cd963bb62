// Package ratelimit provides in-process request rate limiting.
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// pruneThreshold bounds the bucket map. Once crossed, buckets idle for a
// full window are swept before the next one is created.
const pruneThreshold = 4096

// RateLimiter provides rate limiting functionality
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// TokenBucketLimiter keeps one continuously refilling token bucket per key.
// Tokens accrue fractionally with elapsed time, so a full window of
// inactivity restores the whole budget.
type TokenBucketLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	capacity float64
	window   time.Duration
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewTokenBucketLimiter creates a limiter allowing capacity requests per
// window for each key. A non-positive capacity denies every request.
func NewTokenBucketLimiter(capacity int, window time.Duration) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		buckets:  make(map[string]*bucket),
		capacity: float64(capacity),
		window:   window,
	}
}

// Allow consumes one token for key, reporting whether the budget had one
func (l *TokenBucketLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= pruneThreshold {
			l.prune(now)
		}
		b = &bucket{tokens: l.capacity}
		l.buckets[key] = b
	} else {
		refill := l.capacity * (now.Sub(b.seen).Seconds() / l.window.Seconds())
		b.tokens = math.Min(l.capacity, b.tokens+refill)
	}
	b.seen = now

	if b.tokens < 1 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// Reset clears the bucket for a key
func (l *TokenBucketLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.buckets, key)
	return nil
}

// prune drops buckets idle long enough to have refilled completely.
// Caller holds l.mu.
func (l *TokenBucketLimiter) prune(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.seen) >= l.window {
			delete(l.buckets, key)
		}
	}
}

// IPRateLimiter wraps a token bucket limiter keyed by client identity
type IPRateLimiter struct {
	limiter           RateLimiter
	requestsPerMinute int
}

// NewIPRateLimiter creates a rate limiter allowing requestsPerMinute from
// each client
func NewIPRateLimiter(requestsPerMinute int) *IPRateLimiter {
	return &IPRateLimiter{
		limiter:           NewTokenBucketLimiter(requestsPerMinute, time.Minute),
		requestsPerMinute: requestsPerMinute,
	}
}

// Allow checks if a request from a client is allowed
func (l *IPRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.limiter.Allow(ctx, "ip:"+key)
}

// Limit returns the per-minute budget
func (l *IPRateLimiter) Limit() int {
	return l.requestsPerMinute
}
