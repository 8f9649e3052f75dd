package httpx

import (
	"net"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware enforces a per-client request rate. Limiters live in
// a bounded LRU so a scan over many source addresses cannot grow the map
// without limit.
type RateLimitMiddleware struct {
	limiters *lru.Cache[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewRateLimitMiddleware allows rps requests per second with the given
// burst, tracking at most maxClients distinct clients at a time.
func NewRateLimitMiddleware(rps float64, burst, maxClients int) *RateLimitMiddleware {
	limiters, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &RateLimitMiddleware{
		limiters: limiters,
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Get(key); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters.Add(key, limiter)
	return limiter
}

// Middleware wraps next with the rate limit.
func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(ClientIP(r)).Allow() {
			JSONError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the originating client address, preferring the
// X-Forwarded-For chain set by the reverse proxy.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
