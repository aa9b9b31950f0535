package cronx

import (
	"fmt"

	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/robfig/cron/v3"
)

// logger cron.Logger를 애플리케이션 로거로 연결합니다.
// cron의 Info 로그는 스케줄 실행마다 발생하므로 Debug 레벨로 낮춰 기록합니다.
type logger struct {
	component string
}

var _ cron.Logger = (*logger)(nil)

// NewLogger 지정한 컴포넌트 이름으로 기록하는 cron.Logger를 반환합니다.
func NewLogger(component string) cron.Logger {
	return &logger{component: component}
}

func (l *logger) Info(msg string, keysAndValues ...any) {
	applog.WithComponentAndFields(l.component, toFields(keysAndValues)).Debug("cron: " + msg)
}

func (l *logger) Error(err error, msg string, keysAndValues ...any) {
	fields := toFields(keysAndValues)
	fields["error"] = err

	applog.WithComponentAndFields(l.component, fields).Error("cron: " + msg)
}

// toFields cron이 전달하는 key, value 쌍 목록을 로그 필드로 변환합니다.
func toFields(keysAndValues []any) applog.Fields {
	fields := make(applog.Fields, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	if len(keysAndValues)%2 == 1 {
		fields["extra"] = keysAndValues[len(keysAndValues)-1]
	}
	return fields
}
