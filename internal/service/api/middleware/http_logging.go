package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/darkkaiser/canary-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// Content-Length 헤더가 없을 때(Chunked 등) bytes_in 필드에 기록할 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 핸들러가 반환한 에러는 이 미들웨어에서 c.Error()로 즉시 처리하므로,
// 로그에는 에러 핸들러가 결정한 최종 상태 코드가 기록됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// 패닉이 발생해도 로그가 남도록 defer로 기록합니다.
			defer logRequest(c, start)

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

func logRequest(c echo.Context, start time.Time) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	bytesIn := req.Header.Get(echo.HeaderContentLength)
	if bytesIn == "" {
		bytesIn = defaultBytesIn
	}

	applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
		"method":   req.Method,
		"path":     path,
		"uri":      maskSensitiveQueryParams(req.RequestURI),
		"host":     req.Host,
		"protocol": req.Proto,

		"remote_ip":  c.RealIP(),
		"user_agent": req.UserAgent(),
		"referer":    req.Referer(),

		"status":    res.Status,
		"bytes_in":  bytesIn,
		"bytes_out": strconv.FormatInt(res.Size, 10),

		"latency":       strconv.FormatInt(latency.Microseconds(), 10),
		"latency_human": latency.String(),

		"request_id": res.Header().Get(echo.HeaderXRequestID),
	}).Info(constants.LogMsgHTTPRequest)
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱에 실패하면 원본을 그대로 반환합니다.
//
//	입력: "/canary?token=secret123&id=100"
//	출력: "/canary?id=100&token=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if values, ok := q[param]; ok {
			for i, v := range values {
				values[i] = strutil.Mask(v)
			}
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
