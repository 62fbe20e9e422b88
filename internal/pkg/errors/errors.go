// Package errors 타입 기반 분류와 에러 체이닝을 지원하는 애플리케이션 에러를 제공합니다.
//
// 새 에러 생성:
//
//	err := errors.New(errors.InvalidInput, "웹 서버 포트가 올바르지 않습니다")
//
// 컨텍스트 추가:
//
//	return errors.Wrap(err, errors.System, "설정 파일 로드 실패")
//
// 타입 검사:
//
//	if errors.Is(err, errors.InvalidInput) { ... }
//
// %+v 로 출력하면 에러 체인과 생성 위치의 스택 트레이스가 함께 출력됩니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 애플리케이션에서 생성하는 모든 에러의 표준 형태입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 원인 에러를 제외한 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

// Stack 에러가 생성된 위치의 스택 트레이스를 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v 사용 시 스택 트레이스와 원인 체인을 함께 출력합니다.
//
// 스택은 체인의 끝(원인이 없거나 원인이 AppError가 아닌 경우)에서만 출력하여 중복을 피합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			var inner *AppError
			if e.cause == nil || !errors.As(e.cause, &inner) {
				if len(e.stack) > 0 {
					fmt.Fprint(s, "\nStack trace:")
					for _, frame := range e.stack {
						funcName := frame.Function
						if idx := strings.LastIndex(funcName, "/"); idx != -1 {
							funcName = funcName[idx+1:]
						}
						fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, funcName)
					}
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(callerSkip),
	}
}

// Newf 포맷 문자열로 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(callerSkip),
	}
}

// Wrap 원인 에러에 컨텍스트를 추가합니다. err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(callerSkip),
	}
}

// Wrapf 포맷 문자열로 원인 에러에 컨텍스트를 추가합니다. err가 nil이면 nil을 반환합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(callerSkip),
	}
}

// Is 에러 체인에 주어진 타입의 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 타입을 반환합니다.
// 체인에 AppError가 없으면 Unknown을 반환합니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
		err = errors.Unwrap(err)
	}
	return t
}
