package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	apperrors "github.com/darkkaiser/canary-server/internal/pkg/errors"
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// panic 발생 시 스택 트레이스를 저장할 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하고 스택 트레이스와 함께 로깅하는 미들웨어를 반환합니다.
// 복구된 panic은 Internal 타입의 AppError로 변환되어 Echo 에러 핸들러로 전달됩니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				// http.ErrAbortHandler는 연결 중단을 위한 의도적인 panic이므로 다시 던집니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				var err error
				if cause, ok := r.(error); ok {
					err = apperrors.Wrap(cause, apperrors.Internal, "핸들러 실행 중 panic이 발생했습니다")
				} else {
					err = apperrors.New(apperrors.Internal, fmt.Sprintf("핸들러 실행 중 panic이 발생했습니다: %v", r))
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err,
					"stack":  string(stack[:length]),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}
