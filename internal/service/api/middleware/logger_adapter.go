package middleware

import (
	"io"

	applog "github.com/darkkaiser/canary-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo의 로거 인터페이스(github.com/labstack/gommon/log.Logger)를 애플리케이션 로거로 연결하는 어댑터입니다.
//
// Echo 내부에서 발생하는 로그(서버 시작 실패 등)도 애플리케이션 로그와 같은 형식, 같은 출력 대상으로 기록됩니다.
type Logger struct {
	*applog.Logger
}

// echo 레벨과 logrus 레벨의 대응표. Trace, Fatal, Panic은 echo에 대응 레벨이 없습니다.
var (
	toEchoLevel = map[applog.Level]log.Lvl{
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}
	fromEchoLevel = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
)

func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix, Header 기능은 사용하지 않습니다.
func (l Logger) Prefix() string   { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level 대응하는 레벨이 없으면 log.OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := toEchoLevel[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel log.OFF 등 대응하는 레벨이 없으면 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := fromEchoLevel[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

func (l Logger) Print(i ...interface{})                    { l.Logger.Print(i...) }
func (l Logger) Printf(format string, args ...interface{}) { l.Logger.Printf(format, args...) }
func (l Logger) Printj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...interface{})                    { l.Logger.Debug(i...) }
func (l Logger) Debugf(format string, args ...interface{}) { l.Logger.Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...interface{})                    { l.Logger.Info(i...) }
func (l Logger) Infof(format string, args ...interface{}) { l.Logger.Infof(format, args...) }
func (l Logger) Infoj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...interface{})                    { l.Logger.Warn(i...) }
func (l Logger) Warnf(format string, args ...interface{}) { l.Logger.Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...interface{})                    { l.Logger.Error(i...) }
func (l Logger) Errorf(format string, args ...interface{}) { l.Logger.Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...interface{})                    { l.Logger.Fatal(i...) }
func (l Logger) Fatalf(format string, args ...interface{}) { l.Logger.Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...interface{})                    { l.Logger.Panic(i...) }
func (l Logger) Panicf(format string, args ...interface{}) { l.Logger.Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON)                         { l.Logger.WithFields(applog.Fields(j)).Panic() }
