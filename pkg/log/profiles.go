package log

import "os"

// callerPathPrefix 호출자 경로 축약에 사용하는 모듈 경로입니다.
const callerPathPrefix = "github.com/darkkaiser/agileflow-probe"

// NewProductionOptions 운영 환경(serve 모드)에 맞춘 로그 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경에 맞춘 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewCLIOptions check/wait 명령처럼 짧게 실행되고 끝나는 명령을 위한 로그 설정을 반환합니다.
// 파일은 만들지 않고 표준 에러로만 출력하여, 표준 출력은 명령 결과 전용으로 남겨둡니다.
func NewCLIOptions(appName string, verbose bool) Options {
	level := WarnLevel
	if verbose {
		level = DebugLevel
	}

	return Options{
		Name:  appName,
		Level: level,

		DisableFileLog:   true,
		EnableConsoleLog: true,
		ConsoleWriter:    os.Stderr,
	}
}
