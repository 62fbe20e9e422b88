package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/canary-server/internal/pkg/errors"
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 전역 로거 상태를 바꾸므로 t.Parallel()을 사용하지 않습니다.
func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		err            error
		expectedStatus int
		expectedJSON   string
		expectedLevel  string
		expectedMsg    string
	}{
		{
			name:           "404 기본 메시지는 한국어로 변환",
			method:         http.MethodGet,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLevel:  "warning",
			expectedMsg:    constants.LogMsgHTTP4xxClientError,
		},
		{
			name:           "404 커스텀 메시지 유지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusNotFound, "Custom Check"),
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"Custom Check"}`,
			expectedLevel:  "warning",
			expectedMsg:    constants.LogMsgHTTP4xxClientError,
		},
		{
			name:           "405 Method Not Allowed",
			method:         http.MethodPost,
			err:            echo.ErrMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedJSON:   `{"result_code":405,"message":"허용되지 않은 메서드입니다"}`,
			expectedLevel:  "warning",
			expectedMsg:    constants.LogMsgHTTP4xxClientError,
		},
		{
			name:           "ErrorResponse 메시지 사용",
			method:         http.MethodGet,
			err:            NewTooManyRequestsError("잠시 후 다시"),
			expectedStatus: http.StatusTooManyRequests,
			expectedJSON:   `{"result_code":429,"message":"잠시 후 다시"}`,
			expectedLevel:  "warning",
			expectedMsg:    constants.LogMsgHTTP4xxClientError,
		},
		{
			name:           "일반 에러는 500",
			method:         http.MethodGet,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLevel:  "error",
			expectedMsg:    constants.LogMsgHTTP5xxServerError,
		},
		{
			name:           "AppError NotFound는 404, 내부 메시지는 노출하지 않음",
			method:         http.MethodGet,
			err:            apperrors.New(apperrors.NotFound, "내부 메시지"),
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLevel:  "warning",
			expectedMsg:    constants.LogMsgHTTP4xxClientError,
		},
		{
			name:           "AppError InvalidInput은 400",
			method:         http.MethodGet,
			err:            apperrors.New(apperrors.InvalidInput, "x"),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"잘못된 요청입니다"}`,
			expectedLevel:  "warning",
			expectedMsg:    constants.LogMsgHTTP4xxClientError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := testutil.CaptureLog(t)

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/canary?x=1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedJSON, rec.Body.String())

			entry, ok := logs.Find(tt.expectedMsg)
			require.True(t, ok, "로그가 기록되어야 합니다: %s", logs.String())
			assert.Equal(t, tt.expectedLevel, entry.Get("level").String())
			assert.Equal(t, constants.ComponentErrorHandler, entry.Get("component").String())
			assert.Equal(t, "/canary", entry.Get("path").String())
			assert.Equal(t, int64(tt.expectedStatus), entry.Get("status_code").Int())
			assert.Equal(t, "req-1", entry.Get("request_id").String())
		})
	}
}

func TestErrorHandler_HeadRequest(t *testing.T) {
	testutil.CaptureLog(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/missing", nil), rec)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	logs := testutil.CaptureLog(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/canary", nil), rec)
	require.NoError(t, c.String(http.StatusOK, constants.CanaryResponseBody))

	ErrorHandler(errors.New("late error"), c)

	// 이미 전송된 응답은 변경되지 않지만 로그는 남습니다.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.CanaryResponseBody, rec.Body.String())
	_, ok := logs.Find(constants.LogMsgHTTP5xxServerError)
	assert.True(t, ok)
}

func TestNewTooManyRequestsError(t *testing.T) {
	t.Parallel()

	err := NewTooManyRequestsError("msg")

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusTooManyRequests, he.Code)

	code, message := resolve(he)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "msg", message)
}
