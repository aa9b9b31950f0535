package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 로그 저장 경로가 지정되지 않았을 때 사용하는 디렉토리
	defaultDir = "logs"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (단위: MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 초기화 시 생성된 Closer. Setup 재호출 시 동일한 인스턴스를 반환합니다.
	globalCloser io.Closer

	// 최초 초기화 에러. 재호출 시 재시도하지 않고 그대로 반환합니다.
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화하고 옵션에 따라 파일/콘솔 출력을 구성합니다.
//
// 주의:
//   - main 함수 도입부에서 한 번 호출합니다.
//   - 반환된 Closer는 defer로 반드시 해제해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 포맷팅은 hook에서 수행하므로, 기본 출력 경로에서는 포맷팅 비용을 없앱니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}

	if opts.EnableConsoleLog {
		h.consoleWriter = opts.ConsoleWriter
		if h.consoleWriter == nil {
			h.consoleWriter = os.Stdout
		}
	}

	var closers []io.Closer
	if !opts.DisableFileLog {
		var err error
		if closers, err = attachFileWriters(h, opts); err != nil {
			return nil, err
		}
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그 발생 시(os.Exit 직전) 남은 로그를 기록하고 리소스를 해제합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// attachFileWriters 메인/Critical/Verbose 로그 파일을 생성하여 hook에 연결합니다.
// 생성 도중 실패하면 이미 생성된 파일을 모두 닫습니다.
func attachFileWriters(h *hook, opts Options) ([]io.Closer, error) {
	logDir := opts.Dir
	if logDir == "" {
		logDir = defaultDir
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	newFileLogger := func(suffix string) *lumberjack.Logger {
		name := opts.Name
		if suffix != "" {
			name += "." + suffix
		}
		return &lumberjack.Logger{
			Filename:   filepath.Join(logDir, fmt.Sprintf("%s.%s", name, fileExt)),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   false,
			LocalTime:  true,
		}
	}

	mainLogger := newFileLogger("")
	h.mainWriter = mainLogger
	closers := []io.Closer{mainLogger}

	if opts.EnableCriticalLog {
		criticalLogger := newFileLogger("critical")
		h.criticalWriter = criticalLogger
		closers = append(closers, criticalLogger)
	}

	if opts.EnableVerboseLog {
		verboseLogger := newFileLogger("verbose")
		h.verboseWriter = verboseLogger
		closers = append(closers, verboseLogger)
	}

	return closers, nil
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}
