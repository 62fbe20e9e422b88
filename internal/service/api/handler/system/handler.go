// Package system 헬스체크, 버전 정보 등 시스템 수준의 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/canary-server/internal/pkg/version"
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo:       buildInfo,
		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버의 상태와 가동 시간(초)을 반환합니다.
// @Description 배포 파이프라인과 모니터링 시스템에서 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	h.logRequest(c, "/health", constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status: constants.HealthStatusHealthy,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 새 버전이 배포되었는지 확인하는 데 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	h.logRequest(c, "/version", constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}

func (h *Handler) logRequest(c echo.Context, endpoint, message string) {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  endpoint,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(message)
}
