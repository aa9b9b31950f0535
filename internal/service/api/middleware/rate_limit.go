package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 IP별 Limiter의 최대 개수
	// 가득 차면 맵의 임의 순회 순서를 이용해 하나를 제거합니다.
	maxIPRateLimiters = 10000

	headerRetryAfter  = "Retry-After"
	retryAfterSeconds = "1"
)

// ipRateLimiter IP 주소별 Token Bucket Limiter를 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP의 Limiter를 반환하며, 없으면 생성합니다. (Double-Checked Locking)
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// RateLimit IP 기반 요청 속도 제한 미들웨어를 반환합니다.
// 제한을 넘으면 Retry-After 헤더와 함께 429를 반환합니다.
//
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimit(requestsPerSecond int, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf("RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: %d)", requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf("RateLimit: burst는 양수여야 합니다 (현재값: %d)", burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn("요청 차단: 속도 제한(Rate Limit)을 초과하였습니다")

				c.Response().Header().Set(headerRetryAfter, retryAfterSeconds)

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
