package middleware

import (
	"io"

	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo의 로거 인터페이스(github.com/labstack/gommon/log)를 애플리케이션 로거(logrus)에 연결하는 어댑터입니다.
//
// Print, Debug, Infof 등 서명이 같은 메서드는 내장된 Logger에서 그대로 승격되고,
// 여기서는 서명이 다르거나 logrus에 없는 메서드만 구현합니다.
type Logger struct {
	*applog.Logger
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) Prefix() string {
	return ""
}

// SetPrefix Echo의 Prefix 기능은 사용하지 않습니다.
func (l Logger) SetPrefix(string) {}

// SetHeader Echo의 Header 기능은 사용하지 않습니다.
func (l Logger) SetHeader(string) {}

// Level logrus 레벨을 Echo 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	}

	return log.OFF
}

// SetLevel Echo 레벨을 logrus 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l Logger) Printj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Print() }
func (l Logger) Debugj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Debug() }
func (l Logger) Infoj(j log.JSON)  { l.Logger.WithFields(applog.Fields(j)).Info() }
func (l Logger) Warnj(j log.JSON)  { l.Logger.WithFields(applog.Fields(j)).Warn() }
func (l Logger) Errorj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Error() }
func (l Logger) Fatalj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Fatal() }
func (l Logger) Panicj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Panic() }
