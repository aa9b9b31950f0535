package fetcher

import (
	"net/http"
	"time"

	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

// LoggingFetcher 요청 메서드, URL, 응답 상태, 소요 시간을 로그로 남기는 미들웨어입니다.
// 점검 실패는 흔한 상황이므로 실패는 Warn, 성공은 Debug 레벨로 기록합니다.
type LoggingFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*LoggingFetcher)(nil)

// NewLoggingFetcher 새로운 LoggingFetcher 인스턴스를 생성합니다.
func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{delegate: delegate}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      RedactURL(req.URL),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status"] = resp.Status
		fields["status_code"] = resp.StatusCode
	}

	if err != nil {
		fields["error"] = err.Error()

		applog.WithComponent(component).
			WithContext(req.Context()).
			WithFields(fields).
			Warn("HTTP 요청 실패")

		return resp, err
	}

	applog.WithComponent(component).
		WithContext(req.Context()).
		WithFields(fields).
		Debug("HTTP 요청 완료")

	return resp, nil
}
