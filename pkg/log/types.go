package log

import (
	"github.com/sirupsen/logrus"
)

// 애플리케이션 코드가 logrus를 직접 import하지 않고도 로깅 타입을 사용할 수 있도록 별칭을 제공합니다.

// Level 로그 레벨입니다.
type Level = logrus.Level

// 로그 레벨 상수 (심각도가 높은 순서)
const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels 지원하는 모든 로그 레벨 목록입니다.
var AllLevels = logrus.AllLevels

type (
	// Fields 구조화된 로그에 함께 기록할 키/값 집합입니다.
	Fields = logrus.Fields

	// Entry 필드가 누적된 로그 엔트리입니다.
	Entry = logrus.Entry

	// Hook 로그 이벤트 수신기입니다.
	Hook = logrus.Hook

	// Logger 로거 인스턴스입니다.
	Logger = logrus.Logger

	// Formatter 로그 엔트리를 바이트열로 변환하는 포맷터입니다.
	Formatter = logrus.Formatter

	// JSONFormatter JSON 포맷터입니다.
	JSONFormatter = logrus.JSONFormatter

	// TextFormatter 텍스트 포맷터입니다.
	TextFormatter = logrus.TextFormatter
)
