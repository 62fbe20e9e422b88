package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/canary-server/internal/pkg/errors"
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// 프레임워크 기본 메시지(http.StatusText)를 대체할 한국어 메시지입니다.
var defaultMessages = map[int]string{
	http.StatusBadRequest:            constants.ErrMsgBadRequest,
	http.StatusNotFound:              constants.ErrMsgNotFound,
	http.StatusMethodNotAllowed:      constants.ErrMsgMethodNotAllowed,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusTooManyRequests:       constants.ErrMsgTooManyRequests,
	http.StatusInternalServerError:   constants.ErrMsgInternalServer,
	http.StatusServiceUnavailable:    constants.ErrMsgServiceUnavailable,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환하며,
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(code)
	} else {
		sendErr = c.JSON(code, response.ErrorResponse{
			ResultCode: code,
			Message:    message,
		})
	}
	if sendErr != nil {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
			"status_code": code,
			"error":       sendErr,
		}).Error(constants.LogMsgErrorResponseFail)
	}
}

// resolve 에러로부터 HTTP 상태 코드와 클라이언트에게 노출할 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := he.Code

		var message string
		switch m := he.Message.(type) {
		case response.ErrorResponse:
			message = m.Message
		case string:
			message = m
		}

		// 프레임워크 기본 영문 메시지는 한국어로 통일
		if message == "" || message == http.StatusText(code) {
			if msg, ok := defaultMessages[code]; ok {
				message = msg
			}
		}

		return code, message
	}

	// AppError는 타입에 따라 상태 코드를 결정하되, 내부 메시지는 노출하지 않습니다.
	code := statusFromErrorType(apperrors.UnderlyingType(err))
	return code, defaultMessages[code]
}

func statusFromErrorType(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
