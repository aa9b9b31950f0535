package log

import "github.com/sirupsen/logrus"

// silentFormatter 아무것도 하지 않는 포맷터입니다.
// logrus는 io.Discard로 출력하더라도 포맷팅을 수행하므로, 실제 포맷팅은 hook에 맡기고 이 단계는 건너뜁니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
