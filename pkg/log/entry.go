package log

import "github.com/sirupsen/logrus"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// StandardLogger 전역 Logger를 반환합니다. (Echo 등 외부 프레임워크 연동용)
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetLevel 전역 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}
