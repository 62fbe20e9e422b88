// Package canary 배포 검증용 카나리 엔드포인트 핸들러를 제공합니다.
//
// 배포 파이프라인은 이 엔드포인트의 응답과 콘솔 출력으로 새 버전에 트래픽이 도달했는지 확인합니다.
// 핸들러는 요청 내용과 무관하게 항상 같은 응답을 반환합니다.
package canary

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 카나리 엔드포인트 핸들러
//
// 불변 상태(콘솔 출력 대상)만 보유하므로 여러 요청에서 동시에 호출해도 안전합니다.
type Handler struct {
	console io.Writer
}

// New 지정된 콘솔 출력 대상으로 Handler 인스턴스를 생성합니다.
func New(console io.Writer) *Handler {
	if console == nil {
		panic(constants.PanicMsgConsoleRequired)
	}

	return &Handler{console: console}
}

// NewDefault 표준 출력(os.Stdout)을 콘솔로 사용하는 Handler 인스턴스를 생성합니다.
func NewDefault() *Handler {
	return New(os.Stdout)
}

// CanaryHandler godoc
// @Summary 카나리 배포 확인
// @Description 콘솔에 배포 버전 표식을 출력하고 고정된 성공 메시지를 반환합니다.
// @Description 쿼리 파라미터, 헤더, 본문은 무시됩니다.
// @Tags Canary
// @Produce plain
// @Success 200 {string} string "요청 응답 성공"
// @Router /canary [get]
func (h *Handler) CanaryHandler(c echo.Context) error {
	h.println(constants.CanaryConsoleVersion)
	logRequest(c, "/canary")

	return c.String(http.StatusOK, constants.CanaryResponseBody)
}

// CanaryWithLoopHandler godoc
// @Summary 카나리 배포 확인 (루프 출력)
// @Description 콘솔에 표식을 출력한 뒤 카운터를 1부터 10까지 한 줄씩 출력하고 고정된 성공 메시지를 반환합니다.
// @Tags Canary
// @Produce plain
// @Success 200 {string} string "요청 응답 성공"
// @Router /fisa1 [get]
func (h *Handler) CanaryWithLoopHandler(c echo.Context) error {
	h.println(constants.CanaryConsoleLoopHeader)
	logRequest(c, "/fisa1")

	for i := 1; i <= constants.CanaryLoopCount; i++ {
		h.println(fmt.Sprintf(constants.CanaryConsoleLoopFormat, i))
	}

	return c.String(http.StatusOK, constants.CanaryResponseBody)
}

// println 한 줄을 한 번의 Write로 출력하여 동시 요청 간에 줄이 섞이지 않도록 합니다.
// 콘솔 출력 실패는 응답에 영향을 주지 않습니다.
func (h *Handler) println(line string) {
	if _, err := io.WriteString(h.console, line+"\n"); err != nil {
		applog.WithComponentAndFields(constants.ComponentCanaryHandler, applog.Fields{
			"error": err,
		}).Warn(constants.LogMsgConsoleWriteFailed)
	}
}

func logRequest(c echo.Context, endpoint string) {
	applog.WithComponentAndFields(constants.ComponentCanaryHandler, applog.Fields{
		"endpoint":   endpoint,
		"method":     c.Request().Method,
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}).Info(constants.LogMsgCanaryRequest)
}
