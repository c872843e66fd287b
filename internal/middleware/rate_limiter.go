package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipLimiter is a fixed-window per-IP counter. Windows are tracked in memory;
// a background sweep drops IPs whose window has expired so the map does not
// grow without bound.
type ipLimiter struct {
	mu      sync.Mutex
	windows map[string]*ipWindow
	limit   int
	period  time.Duration
}

type ipWindow struct {
	count   int
	resetAt time.Time
}

func newIPLimiter(limit int, period time.Duration) *ipLimiter {
	l := &ipLimiter{
		windows: make(map[string]*ipWindow),
		limit:   limit,
		period:  period,
	}
	go l.sweep()
	return l
}

// allow increments the counter for ip and reports whether the request is
// still within the limit.
func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[ip]
	if !ok || now.After(w.resetAt) {
		w = &ipWindow{resetAt: now.Add(l.period)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.resetAt
}

func (l *ipLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, w := range l.windows {
			if now.After(w.resetAt) {
				delete(l.windows, ip)
				purged++
			}
		}
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter window sweep")
		}
	}
}

var loginLimiter = newIPLimiter(20, time.Minute)

// LoginRateLimiter throttles credential guessing: 20 login attempts per
// minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ok, _ := loginLimiter.allow(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many login attempts, try again in a minute"))
			return
		}
		c.Next()
	}
}

// RateLimiter throttles the whole API per client IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newIPLimiter(limit, window)
	return func(c *gin.Context) {
		ok, resetAt := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", resetAt.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, slow down"))
			return
		}
		c.Next()
	}
}
