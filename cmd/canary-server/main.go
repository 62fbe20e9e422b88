package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/canary-server/internal/config"
	"github.com/darkkaiser/canary-server/internal/pkg/version"
	"github.com/darkkaiser/canary-server/internal/service"
	"github.com/darkkaiser/canary-server/internal/service/api"
	applog "github.com/darkkaiser/canary-server/pkg/log"
)

// @title Canary Server API
// @version 1.0.0
// @description 배포 파이프라인에서 서버의 정상 배포 여부를 확인하기 위한 카나리 엔드포인트를 제공합니다.
// @description
// @description ## 주요 기능
// @description - GET /canary: 배포된 버전 식별 문자열을 콘솔에 출력
// @description - GET /fisa1: 요청 처리 과정을 콘솔에 반복 출력
// @description - GET /health, GET /version: 상태 및 빌드 정보 조회

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

// main 패키지 로그의 component 필드 값
const componentMain = "main"

const (
	banner = `
   ____                                 ____
  / ___| __ _  _ __    __ _  _ __  _   _/ ___|   ___  _ __ __   __ ___  _ __
 | |    / _' || '_ \  / _' || '__|| | | \___ \  / _ \| '__|\ \ / // _ \| '__|
 | |___| (_| || | | || (_| || |   | |_| |___) ||  __/| |    \ V /|  __/| |
  \____|\__,_||_| |_| \__,_||_|    \__, |____/  \___||_|     \_/  \___||_|
                                   |___/                     %s
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	printBanner(os.Stdout, buildInfo)

	applog.WithComponentAndFields(componentMain, startupFields(appConfig, buildInfo)).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{api.NewService(appConfig, buildInfo)}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(componentMain, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(componentMain).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(componentMain).Info("종료 신호 수신, 서비스를 중지합니다")
	cancel()
	serviceStopWG.Wait()
}

// printBanner 아스키아트 배너와 버전을 출력합니다. (폰트: standard)
func printBanner(w io.Writer, buildInfo version.Info) {
	fmt.Fprintf(w, banner, buildInfo.Version)
}

// startupFields 서버 초기화 로그에 남길 빌드 정보와 실행 환경 필드를 구성합니다.
func startupFields(appConfig *config.AppConfig, buildInfo version.Info) applog.Fields {
	fields := applog.Fields(buildInfo.ToMap())
	fields["env"] = map[bool]string{true: "development", false: "production"}[appConfig.Debug]
	fields["port"] = appConfig.CanaryAPI.WS.ListenPort
	fields["tls"] = appConfig.CanaryAPI.WS.TLSServer

	return fields
}
