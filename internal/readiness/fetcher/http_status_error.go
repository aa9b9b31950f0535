package fetcher

import (
	"fmt"
)

// HTTPStatusError 허용되지 않은 HTTP 상태 코드를 받았을 때 반환되는 에러입니다.
//
// Cause에는 상태 코드에 맞게 분류된 apperrors.AppError가 들어 있으므로,
// 호출자는 apperrors.Is로 에러 종류를 판별할 수 있습니다.
//
//	var statusErr *HTTPStatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusServiceUnavailable {
//	    ...
//	}
type HTTPStatusError struct {
	// StatusCode 서버가 반환한 HTTP 상태 코드 (예: 503)
	StatusCode int

	// Status 상태 텍스트 (예: "503 Service Unavailable")
	Status string

	// URL 요청 URL (민감 정보는 마스킹됨)
	URL string

	// BodySnippet 응답 본문의 앞부분 (최대 maxSnippetBytes)
	BodySnippet string

	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}
