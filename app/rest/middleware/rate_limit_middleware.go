package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			// Auth endpoints get much stricter limits than catalog reads
			var limit rate.Limit
			var burst int

			path := c.Request().URL.Path
			switch {
			case strings.Contains(path, "/auth/login"):
				limit = rate.Every(10 * time.Second)
				burst = 5
			case strings.Contains(path, "/auth/register"):
				limit = rate.Every(1 * time.Minute)
				burst = 3
			case strings.Contains(path, "/orders"):
				limit = rate.Every(1 * time.Second)
				burst = 10
			default:
				limit = rate.Every(100 * time.Millisecond)
				burst = 30
			}

			if !rl.allow(ip, path, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success":     false,
					"error":       "rate limit exceeded",
					"retry_after": rl.getRetryAfter(ip, path),
				})
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip, path string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	key := visitorKey(ip, path)
	visitor, exists := rl.visitors[key]
	if !exists {
		rl.visitors[key] = &Visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

func (rl *RateLimiter) getRetryAfter(ip, path string) int {
	rl.mutex.RLock()
	defer rl.mutex.RUnlock()

	visitor, exists := rl.visitors[visitorKey(ip, path)]
	if !exists {
		return 0
	}

	reservation := visitor.limiter.Reserve()
	if !reservation.OK() {
		return 60
	}

	delay := reservation.Delay()
	reservation.Cancel()

	return int(delay.Seconds())
}

// visitorKey buckets per IP and per endpoint class so a burst of catalog
// reads cannot exhaust the login budget
func visitorKey(ip, path string) string {
	switch {
	case strings.Contains(path, "/auth/login"):
		return ip + "|login"
	case strings.Contains(path, "/auth/register"):
		return ip + "|register"
	case strings.Contains(path, "/orders"):
		return ip + "|orders"
	default:
		return ip + "|api"
	}
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, visitor := range rl.visitors {
			if time.Since(visitor.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
