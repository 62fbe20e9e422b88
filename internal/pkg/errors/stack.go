package errors

import (
	"path/filepath"
	"runtime"
)

const (
	// callerSkip runtime.Callers, captureStack, 에러 생성 함수 3단계를 건너뛰어
	// New/Wrap을 호출한 위치가 첫 번째 프레임이 되도록 합니다.
	callerSkip = 3

	maxStackFrames = 5
)

// StackFrame 에러가 생성된 위치의 호출 스택 프레임입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := make([]StackFrame, 0, n)
	callersFrames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
