package testutil

import (
	"bufio"
	"bytes"
	"sync"
	"testing"

	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/tidwall/gjson"
)

// LogBuffer 전역 로거 출력을 캡처하는 동시성 안전 버퍼입니다.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String 지금까지 기록된 로그 전체를 반환합니다.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries 기록된 JSON 로그 라인을 파싱하여 반환합니다.
func (b *LogBuffer) Entries() []gjson.Result {
	var entries []gjson.Result

	scanner := bufio.NewScanner(bytes.NewBufferString(b.String()))
	for scanner.Scan() {
		if line := scanner.Text(); gjson.Valid(line) {
			entries = append(entries, gjson.Parse(line))
		}
	}
	return entries
}

// Find msg 필드가 일치하는 첫 번째 로그 엔트리를 반환합니다.
func (b *LogBuffer) Find(msg string) (gjson.Result, bool) {
	for _, e := range b.Entries() {
		if e.Get("msg").String() == msg {
			return e, true
		}
	}
	return gjson.Result{}, false
}

// CaptureLog 전역 로거가 JSON 포맷, Debug 레벨로 버퍼에 기록하도록 설정합니다.
// 원래 설정은 테스트 종료 시 복구되며, 전역 상태를 바꾸므로 t.Parallel()과 함께 사용할 수 없습니다.
func CaptureLog(t testing.TB) *LogBuffer {
	t.Helper()

	logger := applog.StandardLogger()
	origOut, origFormatter, origLevel := logger.Out, logger.Formatter, logger.GetLevel()
	t.Cleanup(func() {
		applog.SetOutput(origOut)
		applog.SetFormatter(origFormatter)
		applog.SetLevel(origLevel)
	})

	buf := &LogBuffer{}
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	return buf
}
