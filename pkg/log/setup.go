package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20

	fileExt = "log"
)

var (
	// Setup()은 프로세스 생명주기 동안 단 한 번만 실행됩니다.
	// 재호출 시에는 최초 호출의 결과(Closer, 에러)를 그대로 반환합니다.
	setupOnce      sync.Once
	globalCloser   io.Closer
	globalSetupErr error

	// consoleOutput 콘솔 로그 출력 대상 (테스트에서 교체 가능)
	consoleOutput io.Writer = os.Stdout
)

// Setup 전역 로거를 초기화합니다.
//
// 로그는 logrus 기본 출력(io.Discard)을 거치지 않고 hook을 통해 파일과 콘솔로 분배됩니다.
// 반환된 Closer는 main 함수에서 defer로 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 포맷팅은 hook에서 한 번만 수행합니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}

	rotating := func(suffix string) *lumberjack.Logger {
		return newRotatingWriter(dir, opts, suffix)
	}

	mainWriter := rotating("")
	h.mainWriter = mainWriter
	closers := []io.Closer{mainWriter}

	if opts.EnableCriticalLog {
		w := rotating("critical")
		h.criticalWriter = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := rotating("verbose")
		h.verboseWriter = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = consoleOutput
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 인한 os.Exit 직전에도 파일이 정상적으로 닫히도록 합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// newRotatingWriter <dir>/<name>[.<suffix>].log 경로의 로테이션 Writer를 생성합니다.
func newRotatingWriter(dir string, opts Options, suffix string) *lumberjack.Logger {
	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	name := opts.Name
	if suffix != "" {
		name += "." + suffix
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+"."+fileExt),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}
