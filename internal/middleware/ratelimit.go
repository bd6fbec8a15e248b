package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleEviction is how long an address may stay quiet before its
// limiter is dropped. Credential-stuffing bursts are short, so idle
// entries can go quickly.
const idleEviction = 5 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool hands out one token bucket per client address.
type limiterPool struct {
	mu      sync.Mutex
	clients map[string]*client
	rate    rate.Limit
	burst   int
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	p := &limiterPool{
		clients: make(map[string]*client),
		rate:    rate.Limit(rps),
		burst:   burst,
	}
	go p.evictIdle()
	return p
}

func (p *limiterPool) get(addr string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.clients[addr]
	if !ok {
		c = &client{limiter: rate.NewLimiter(p.rate, p.burst)}
		p.clients[addr] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

func (p *limiterPool) evictIdle() {
	ticker := time.NewTicker(idleEviction)
	defer ticker.Stop()
	for range ticker.C {
		p.mu.Lock()
		for addr, c := range p.clients {
			if time.Since(c.lastSeen) > idleEviction {
				delete(p.clients, addr)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimit returns middleware that throttles requests per client IP
// at rps requests per second with the given burst. It fronts the
// register and token endpoints; authenticated routes are not limited.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	pool := newLimiterPool(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !pool.get(ip).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
