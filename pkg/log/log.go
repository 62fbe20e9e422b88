// Package log logrus 기반의 애플리케이션 공통 로깅 기능을 제공합니다.
//
// 전역 로거(logrus.StandardLogger)를 그대로 사용하며, Setup()을 통해 파일 로테이션과
// 레벨별 로그 분리를 구성합니다. 모든 로그에는 발생 위치를 나타내는 component 필드를
// 포함하는 것을 원칙으로 합니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// 로그 엔트리에서 발생 위치(컴포넌트)를 나타내는 필드 키
const componentFieldKey = "component"

// WithComponent component 필드가 설정된 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentFieldKey, component)
}

// WithComponentAndFields component 필드와 추가 필드가 함께 설정된 로그 Entry를 반환합니다.
// 전달된 fields 맵은 변경되지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentFieldKey] = component

	return logrus.WithFields(merged)
}

// WithFields 주어진 필드가 설정된 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// StandardLogger 전역 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 로거의 기본 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 기본 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 로거의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetDebugMode 디버그 모드 여부에 따라 로그 레벨을 확정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// New 전역 로거와 독립된 새 로거 인스턴스를 생성합니다.
func New() *Logger {
	return logrus.New()
}
