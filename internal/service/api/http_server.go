package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/canary-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HSTS 활성화 시 브라우저가 HTTPS만 사용하도록 기억하는 기간 (1년)
const hstsMaxAge = 365 * 24 * 60 * 60

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS Strict-Transport-Security 헤더 추가 여부 (TLS 서버에서만 활성화)
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery: 이후 모든 미들웨어와 핸들러의 panic을 복구
//  2. RequestID: X-Request-ID 부여 (이후 로그에 request_id 포함)
//  3. RemoveServerHeader: 서버 스택 정보 노출 방지
//  4. HTTPLogger: 요청/응답 로깅 (503 응답도 기록)
//  5. Timeout: 요청 처리 시간 제한 (초과 시 503)
//  6. CORS: 허용된 Origin의 교차 출처 요청 처리
//  7. Secure: 보안 헤더 추가
//
// 요청 속도 제한과 본문 크기 제한은 카나리 엔드포인트에 적용되지 않아야 하므로
// 전역이 아닌 라우트 단위로 RegisterRoutes에서 적용합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.RemoveServerHeader())
	e.Use(appmiddleware.HTTPLogger())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
