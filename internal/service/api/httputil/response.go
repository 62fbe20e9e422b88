package httputil

import (
	"net/http"

	"github.com/darkkaiser/canary-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
// 메시지는 ErrorResponse로 감싸져 ErrorHandler에서 그대로 클라이언트에 전달됩니다.
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests, response.ErrorResponse{
		ResultCode: http.StatusTooManyRequests,
		Message:    message,
	})
}
