package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

// Echo의 Logger 인터페이스를 만족해야 합니다.
var _ echo.Logger = Logger{}

func newTestAdapter() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	l := applog.New()
	l.SetOutput(buf)
	l.SetFormatter(&applog.JSONFormatter{})
	l.SetLevel(applog.DebugLevel)

	return Logger{Logger: l}, buf
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	l, _ := newTestAdapter()

	tests := []struct {
		echoLevel log.Lvl
		want      applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}
	for _, tt := range tests {
		l.SetLevel(tt.echoLevel)
		assert.Equal(t, tt.want, l.Logger.GetLevel())
		assert.Equal(t, tt.echoLevel, l.Level())
	}

	// 대응 레벨이 없으면 무시
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.ErrorLevel, l.Logger.GetLevel())

	l.Logger.SetLevel(applog.TraceLevel)
	assert.Equal(t, log.OFF, l.Level())
}

func TestLogger_Output(t *testing.T) {
	t.Parallel()

	l, buf := newTestAdapter()

	assert.Same(t, buf, l.Output())
	assert.Empty(t, l.Prefix())

	l.Infoj(log.JSON{"port": 8080})
	l.Warnf("경고 %d", 1)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if assert.Len(t, lines, 2) {
		assert.Equal(t, int64(8080), gjson.GetBytes(lines[0], "port").Int())
		assert.Equal(t, "info", gjson.GetBytes(lines[0], "level").String())
		assert.Equal(t, "경고 1", gjson.GetBytes(lines[1], "msg").String())
		assert.Equal(t, "warning", gjson.GetBytes(lines[1], "level").String())
	}
}
