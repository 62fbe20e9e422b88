package log

import (
	"fmt"
	"os"
)

// Options Setup()에 전달하는 로거 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용할 애플리케이션 식별자 (필수)
	Dir   string // 로그 파일 저장 디렉토리 (빈 값: "logs")
	Level Level  // 로그 레벨 (0: InfoLevel)

	MaxAge     int // 로테이션된 파일 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 보관할 백업 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상 로그를 <name>.critical.log로 추가 기록
	EnableVerboseLog  bool // DEBUG 이하 로그를 <name>.verbose.log로 분리 기록
	EnableConsoleLog  bool // 모든 로그를 표준 출력에도 기록

	// ReportCaller 로그를 남긴 함수와 라인 번호를 기록할지 여부
	ReportCaller bool

	// CallerPathPrefix 호출자 함수 경로에서 잘라낼 접두사
	// 예: "github.com/darkkaiser" → "github.com/darkkaiser/canary-server/pkg/x.F" 가 ".../canary-server/pkg/x.F" 로 출력됨
	CallerPathPrefix string
}

// Validate 설정값의 유효성을 검사합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
