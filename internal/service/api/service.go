package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	_ "github.com/darkkaiser/canary-server/docs"
	"github.com/darkkaiser/canary-server/internal/config"
	"github.com/darkkaiser/canary-server/internal/pkg/version"
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	"github.com/darkkaiser/canary-server/internal/service/api/handler/canary"
	"github.com/darkkaiser/canary-server/internal/service/api/handler/system"
	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 카나리 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하면 HTTP(S) 서버가 별도 고루틴에서 실행되며,
// 전달받은 context가 취소되면 Graceful Shutdown(최대 5초)을 수행합니다.
// 서버가 스스로 멈춘 경우에도 running 상태를 되돌리고 serviceStopWG를 완료합니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	// console 카나리 핸들러의 콘솔 출력 대상
	console io.Writer

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		console: os.Stdout,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며 실제 서버는 고루틴에서 실행됩니다.
// 이미 실행 중이면 경고를 남기고 serviceStopWG.Done()을 호출한 뒤 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}

// runServiceLoop 서버를 구성하고 실행한 뒤, 종료 신호 또는 서버의 조기 종료 중 먼저 발생한 쪽을 처리합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()
	defer s.cleanup()

	e := s.setupServer()

	serverErrC := make(chan error, 1)
	go func() {
		serverErrC <- s.listenAndServe(e)
	}()

	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

		s.shutdown(e)
		s.handleServerError(<-serverErrC)

	case err := <-serverErrC:
		// 종료 요청 없이 서버가 멈춘 경우 (포트 충돌, 인증서 로드 실패 등)
		s.handleServerError(err)
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
	}
}

// setupServer 핸들러, 미들웨어 체인, 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.buildInfo)
	canaryHandler := canary.New(s.console)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   s.appConfig.CanaryAPI.WS.TLSServer,
		AllowOrigins: s.appConfig.CanaryAPI.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler, canaryHandler)

	return e
}

// listenAndServe 설정에 따라 HTTP 또는 HTTPS 서버를 실행하고, 서버가 멈추면 그 원인을 반환합니다.
func (s *Service) listenAndServe(e *echo.Echo) error {
	ws := s.appConfig.CanaryAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	if ws.TLSServer {
		return e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	}
	return e.Start(address)
}

// handleServerError HTTP 서버 종료 원인을 기록합니다.
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown, Info 레벨
//   - 그 외: 포트 바인딩 실패 등 예상치 못한 에러, Error 레벨
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.CanaryAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// shutdown 처리 중인 요청이 끝나기를 최대 DefaultShutdownTimeout만큼 기다린 뒤 서버를 종료합니다.
func (s *Service) shutdown(e *echo.Echo) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}
}

// cleanup 서비스 종료 후 running 상태를 초기화합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
