package api

import (
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/service/api/handler/canary"
	"github.com/darkkaiser/canary-server/internal/service/api/handler/system"
	appmiddleware "github.com/darkkaiser/canary-server/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - 카나리 엔드포인트: /canary, /fisa1 (요청 제한 없음)
//   - 시스템 엔드포인트: /health, /version
//   - API 문서: /swagger/*
//
// 카나리 엔드포인트는 배포 파이프라인의 반복 호출에도 항상 200을 반환해야 하므로
// 요청 속도 제한과 본문 크기 제한은 시스템/문서 라우트에만 적용됩니다.
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, canaryHandler *canary.Handler) {
	// IP별 토큰 버킷을 공유하도록 미들웨어 인스턴스는 한 번만 생성합니다.
	limits := newRequestLimits()

	registerCanaryRoutes(e, canaryHandler)
	registerSystemRoutes(e, systemHandler, limits...)
	registerSwaggerRoutes(e, limits...)
}

// newRequestLimits 요청 속도 제한(IP당 초당 20 요청, 버스트 40)과 본문 크기 제한(128KB) 미들웨어를 생성합니다.
func newRequestLimits() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		appmiddleware.RateLimiting(constants.DefaultRateLimitRequestsPerSecond, constants.DefaultRateLimitBurst),
		middleware.BodyLimit(constants.DefaultMaxBodySize),
	}
}

func registerCanaryRoutes(e *echo.Echo, h *canary.Handler) {
	e.GET("/canary", h.CanaryHandler)
	e.GET("/fisa1", h.CanaryWithLoopHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler, m ...echo.MiddlewareFunc) {
	e.GET("/health", h.HealthCheckHandler, m...)
	e.GET("/version", h.VersionHandler, m...)
}

func registerSwaggerRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	), m...)
}
