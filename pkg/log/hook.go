package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 메인/Critical/Verbose/콘솔 채널로 로그를 분배합니다.
//
//   - Console: 모든 레벨
//   - Critical: ERROR 이상
//   - Verbose: DEBUG 이하 (메인 로그로는 넘어가지 않음)
//   - Main: INFO 이상
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex // Fire(Read Lock)와 Close(Write Lock) 간의 동시성 제어
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 쓰기 실패: %v\n", err)
		}
	}

	var firstErr error
	record := func(err error, channel string) {
		if firstErr == nil {
			firstErr = err
		}
		fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", channel, err)
	}

	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		if _, err := h.criticalWriter.Write(msg); err != nil {
			record(err, "Critical")
		}
	}

	if entry.Level >= DebugLevel {
		if h.verboseWriter != nil {
			if _, err := h.verboseWriter.Write(msg); err != nil {
				record(err, "Verbose")
			}
		}
		return firstErr
	}

	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil {
			record(err, "Main")
		}
	}

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 거부합니다. 진행 중인 Fire가 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
