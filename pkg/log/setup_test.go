package log

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalState 테스트 간 독립성을 위해 Setup()의 전역 상태와 logrus 설정을 초기화합니다.
func resetGlobalState(t *testing.T) {
	t.Helper()

	reset := func() {
		setupOnce = sync.Once{}
		globalCloser = nil
		globalSetupErr = nil
		consoleOutput = os.Stdout

		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stdout)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetReportCaller(false)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	reset()
	t.Cleanup(reset)
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestSetup_Validation(t *testing.T) {
	existingFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(existingFile, []byte("x"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{
			name:        "Name 누락",
			opts:        Options{Dir: t.TempDir()},
			expectError: "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name:        "Dir 위치에 파일이 존재",
			opts:        Options{Name: "app", Dir: existingFile},
			expectError: "이미 파일로 존재합니다",
		},
		{
			name:        "음수 MaxAge",
			opts:        Options{Name: "app", Dir: t.TempDir(), MaxAge: -1},
			expectError: "MaxAge는 0 이상이어야 합니다",
		},
		{
			name:        "음수 MaxSizeMB",
			opts:        Options{Name: "app", Dir: t.TempDir(), MaxSizeMB: -1},
			expectError: "MaxSizeMB는 0 이상이어야 합니다",
		},
		{
			name:        "음수 MaxBackups",
			opts:        Options{Name: "app", Dir: t.TempDir(), MaxBackups: -1},
			expectError: "MaxBackups는 0 이상이어야 합니다",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalState(t)

			cl, err := Setup(tt.opts)
			require.Error(t, err)
			assert.Nil(t, cl)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_Defaults(t *testing.T) {
	resetGlobalState(t)

	dir := t.TempDir()
	cl, err := Setup(Options{Name: "defaults-app", Dir: dir})
	require.NoError(t, err)
	defer cl.Close()

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel(), "기본 로그 레벨은 Info여야 합니다")

	c, ok := cl.(*closer)
	require.True(t, ok)
	require.Len(t, c.closers, 1, "Critical/Verbose 로그가 비활성화되면 메인 로그 파일만 생성되어야 합니다")
	assert.Nil(t, c.hook.consoleWriter)
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetGlobalState(t)

	first, err := Setup(Options{Name: "once-app", Dir: t.TempDir()})
	require.NoError(t, err)
	defer first.Close()

	second, err := Setup(Options{Name: "other-app", Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Same(t, first, second, "재호출 시 최초 생성된 Closer를 반환해야 합니다")
}

func TestSetup_LevelRouting(t *testing.T) {
	resetGlobalState(t)

	console := &bytes.Buffer{}
	consoleOutput = console

	dir := t.TempDir()
	opts := NewProductionOptions("routing-app")
	opts.Dir = dir
	opts.Level = TraceLevel
	opts.EnableConsoleLog = true

	cl, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Debug("디버그 메시지")
	WithComponent("test").Info("정보 메시지")
	WithComponent("test").Error("에러 메시지")

	require.NoError(t, cl.Close())

	mainLog := readFile(t, filepath.Join(dir, "routing-app.log"))
	criticalLog := readFile(t, filepath.Join(dir, "routing-app.critical.log"))
	verboseLog := readFile(t, filepath.Join(dir, "routing-app.verbose.log"))

	assert.Contains(t, mainLog, "정보 메시지")
	assert.Contains(t, mainLog, "에러 메시지")
	assert.NotContains(t, mainLog, "디버그 메시지", "Debug 로그는 메인 로그에 기록되지 않아야 합니다")

	assert.Contains(t, criticalLog, "에러 메시지")
	assert.NotContains(t, criticalLog, "정보 메시지")

	assert.Contains(t, verboseLog, "디버그 메시지")
	assert.NotContains(t, verboseLog, "정보 메시지")

	for _, msg := range []string{"디버그 메시지", "정보 메시지", "에러 메시지"} {
		assert.Contains(t, console.String(), msg, "콘솔에는 모든 레벨의 로그가 출력되어야 합니다")
	}
	assert.Contains(t, mainLog, "component=test")
}

func TestSetup_CallerPathPrefix(t *testing.T) {
	resetGlobalState(t)

	dir := t.TempDir()
	opts := NewDevelopmentOptions("caller-app")
	opts.Dir = dir
	opts.EnableConsoleLog = false

	cl, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Info("호출자 확인")
	require.NoError(t, cl.Close())

	content := readFile(t, filepath.Join(dir, "caller-app.log"))
	assert.Contains(t, content, "func=\".../canary-server/pkg/log.TestSetup_CallerPathPrefix(line:")
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("app")
	assert.Equal(t, "app", prod.Name)
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.True(t, prod.EnableVerboseLog)
	assert.False(t, prod.EnableConsoleLog)
	assert.NoError(t, prod.Validate())

	dev := NewDevelopmentOptions("app")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.False(t, dev.EnableCriticalLog)
	assert.True(t, dev.EnableConsoleLog)
	assert.NoError(t, dev.Validate())
}
