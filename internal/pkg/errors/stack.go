package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip 스택 수집 시 건너뛸 호출 깊이입니다.
// runtime.Callers, captureStack, New/Wrap 계열 함수의 3단계를 건너뛰어 호출자 위치가 0번째 프레임이 됩니다.
const defaultCallerSkip = 3

// StackFrame 단일 호출 프레임 정보입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

// captureStack 현재 위치의 스택 정보를 최대 5단계까지 수집합니다.
func captureStack(skip int) []StackFrame {
	const maxFrames = 5
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
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
