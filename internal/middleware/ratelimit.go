package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles state-changing requests per client IP with a token
// bucket. Reads (GET, HEAD, OPTIONS) are never throttled.
type RateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

// NewRateLimiter allows each client rps requests per second with bursts of burst.
// A non-positive burst falls back to 5.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &RateLimiter{rps: rate.Limit(rps), burst: burst}
}

// Handler is the middleware. Wire it after chi's RealIP so proxied clients
// are keyed by their own address.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		if !l.limiter(clientIP(r)).Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	v, ok := l.limiters.Load(key)
	if !ok {
		v, _ = l.limiters.LoadOrStore(key, &visitor{limiter: rate.NewLimiter(l.rps, l.burst)})
	}
	vis := v.(*visitor)
	vis.lastSeen.Store(time.Now().UnixNano())
	return vis.limiter
}

// Sweep forgets clients not seen since before cutoff and reports how many
// were dropped. A forgotten client starts again with a full bucket.
func (l *RateLimiter) Sweep(cutoff time.Time) int {
	dropped := 0
	l.limiters.Range(func(key, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff.UnixNano() {
			l.limiters.Delete(key)
			dropped++
		}
		return true
	})
	return dropped
}

// Run sweeps clients idle for longer than idle every interval until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Sweep(now.Add(-idle))
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
