// Package ratelimit limits requests per client IP.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// Defaults for inactive clients eviction.
const (
	DefaultCleanupInterval = time.Minute
	DefaultInactiveFor     = 3 * time.Minute
)

// Message is written to limited clients.
const Message string = "Rate limit exceeded."

// IPKey is log key for client ip.
const IPKey string = "ip"

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ErrorWriter writes limited response.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, statusCode int, message string)

// Limiter keeps token bucket for every client IP.
type Limiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*client

	now         func() time.Time
	inactiveFor time.Duration
	done        chan struct{}
	once        sync.Once
}

// NewLimiter creates *Limiter allowing rps requests per second with burst of rps per client.
// Inactive clients are evicted every cleanupInterval, if it is positive.
func NewLimiter(rps int, cleanupInterval time.Duration) *Limiter {
	l := &Limiter{
		limit:       rate.Limit(rps),
		burst:       rps,
		clients:     map[string]*client{},
		now:         time.Now,
		inactiveFor: DefaultInactiveFor,
		done:        make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go l.janitor(cleanupInterval)
	}
	return l
}

// Allow reports whether request from ip is allowed now.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = l.now()
	return c.limiter.AllowN(c.lastSeen, 1)
}

// Middleware responds with 429 to clients over the limit.
func (l *Limiter) Middleware(writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.Allow(ip) {
				logger.GetContextLogger(r.Context()).Warn("Rate limit exceeded", zap.String(IPKey, ip))
				writeError(w, r, http.StatusTooManyRequests, Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Close stops janitor.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.done) })
}

func (l *Limiter) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictInactive()
		}
	}
}

func (l *Limiter) evictInactive() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.inactiveFor {
			delete(l.clients, ip)
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
