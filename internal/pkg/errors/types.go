package errors

import "strconv"

// ErrorType 에러의 성격을 분류합니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 복구된 panic 등)
	Internal

	// System 시스템 또는 인프라 오류 (파일, 네트워크, 포트 바인딩 등)
	System

	// InvalidInput 잘못된 입력값 또는 설정값
	InvalidInput

	// NotFound 대상을 찾을 수 없음
	NotFound
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
