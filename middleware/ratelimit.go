package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/innkeeper/core/apperr"
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/response"
)

const (
	defaultWriteInterval = 3 * time.Second
	defaultVisitorTTL    = 10 * time.Minute
	cleanupEvery         = 1000
)

// RateLimitConfig configures the write rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests.
	// By default safe methods (GET, HEAD, OPTIONS) are skipped.
	Skip func(r *http.Request) bool
	// Interval is the minimum time between writes per key (default: 3s)
	Interval time.Duration
	// Burst is the number of writes allowed back to back (default: 1)
	Burst int
	// KeyExtractor defines how to extract the rate limiting key (default: client IP)
	KeyExtractor func(r *http.Request) string
	// TTL evicts keys idle for longer than this (default: 10m)
	TTL time.Duration
}

// WriteLimiter keeps one token bucket per key. Idle buckets are evicted
// opportunistically during lookups. Safe for concurrent use.
type WriteLimiter struct {
	cfg      RateLimitConfig
	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  uint64
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewWriteLimiter creates a limiter, filling config defaults.
func NewWriteLimiter(cfg RateLimitConfig) *WriteLimiter {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultWriteInterval
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultVisitorTTL
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = RequestClientIP
	}
	if cfg.Skip == nil {
		cfg.Skip = isSafeMethod
	}
	return &WriteLimiter{
		cfg:      cfg,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Allow reports whether a write for key may proceed now.
func (l *WriteLimiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// evict before touching key so a stale bucket is not refreshed
	l.lookups++
	if l.lookups >= cleanupEvery {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.cfg.TTL {
				delete(l.visitors, k)
			}
		}
		l.lookups = 0
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.cfg.Interval), l.cfg.Burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *WriteLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// RateLimit creates a write rate limiting middleware. Requests over the
// limit fail with apperr.ErrWriteInterval, which the error presenter turns
// into a 429 page.
func RateLimit[C handler.Context](l *WriteLimiter) handler.Middleware[C] {
	if l == nil {
		panic("ratelimit middleware: limiter is required")
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			r := ctx.Request()
			if l.cfg.Skip(r) {
				return next(ctx)
			}
			if !l.Allow(l.cfg.KeyExtractor(r)) {
				return response.Error(apperr.ErrWriteInterval)
			}
			return next(ctx)
		}
	}
}

func isSafeMethod(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
