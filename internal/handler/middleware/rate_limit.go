package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"stay-picker/internal/handler/httperr"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/config"
	"stay-picker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the configured TTL are dropped on the next sweep.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	clock     clock.Clock
}

type RateLimiterOption func(*RateLimiter)

func WithRateLimitClock(c clock.Clock) RateLimiterOption {
	return func(r *RateLimiter) {
		r.clock = c
	}
}

func NewRateLimiter(cfg config.RateLimitConfig, opts ...RateLimiterOption) *RateLimiter {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	r := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		idleTTL: cfg.IdleTTL,
		clock:   clock.NewRealClock(time.Local),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RateLimiter) allow(ip string) bool {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.idleTTL > 0 && now.Sub(r.lastSweep) >= r.idleTTL {
		r.evictIdle(now)
		r.lastSweep = now
	}

	client, exists := r.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

// evictIdle must be called with mu held.
func (r *RateLimiter) evictIdle(now time.Time) {
	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) > r.idleTTL {
			delete(r.clients, ip)
		}
	}
}

// Clients reports how many client buckets are currently tracked.
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.allow(ip) {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}
