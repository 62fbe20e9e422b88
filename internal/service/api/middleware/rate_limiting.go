package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ipRateLimiter 클라이언트 IP별 Token Bucket을 관리합니다.
//
// 한 번 등록된 IP는 프로세스가 종료될 때까지 유지됩니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter

	rate  rate.Limit
	burst int
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP에 해당하는 Limiter를 반환하며, 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()
	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 락을 획득하는 사이 다른 고루틴이 먼저 생성했을 수 있습니다.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// RateLimiting IP 기반 요청 속도 제한 미들웨어를 반환합니다.
//
// 클라이언트 IP마다 초당 requestsPerSecond개의 토큰이 채워지고 최대 burst개까지 쌓입니다.
// 토큰이 부족하면 Retry-After 헤더와 함께 429 Too Many Requests로 응답합니다.
//
// requestsPerSecond 또는 burst가 0 이하이면 panic이 발생합니다.
func RateLimiting(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiters := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiters.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(constants.RetryAfter, "1")

				return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
			}

			return next(c)
		}
	}
}
