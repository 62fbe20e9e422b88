package log

// 호출자 경로 축약에 사용하는 조직 단위 모듈 경로
const defaultCallerPathPrefix = "github.com/darkkaiser"

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
// 파일 중심으로 기록하며, 장애 분석을 위해 Critical/Verbose 로그를 분리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller:     true,
		CallerPathPrefix: defaultCallerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
// 모든 로그를 하나의 파일과 터미널에 함께 출력합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: defaultCallerPathPrefix,
	}
}
