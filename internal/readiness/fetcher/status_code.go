package fetcher

import (
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

// maxSnippetBytes HTTPStatusError에 담을 응답 본문의 최대 길이
const maxSnippetBytes = 512

// StatusCodeFetcher 2xx가 아닌 응답을 HTTPStatusError로 변환하는 미들웨어입니다.
//
// 에러를 반환할 때는 응답 객체의 Body를 내부에서 정리하고 nil 응답을 반환하므로,
// 호출자는 성공한 응답의 Body만 닫으면 됩니다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 새로운 StatusCodeFetcher 인스턴스를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	if err := CheckStatus(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// CheckStatus 응답이 2xx가 아니면 Body를 정리하고 *HTTPStatusError를 반환합니다.
func CheckStatus(resp *http.Response) error {
	if statusErr := checkResponseStatus(resp); statusErr != nil {
		drainAndCloseBody(resp.Body)

		return statusErr
	}

	return nil
}

// IsSuccess 2xx 상태 코드인지 확인합니다.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// checkResponseStatus 2xx가 아니면 상태 코드를 도메인 에러 타입으로 분류한 HTTPStatusError를 반환합니다.
//
//   - 5xx, 408, 429: Unavailable (일시적인 상태로 보고 다음 점검에서 회복될 수 있음)
//   - 그 외: ExecutionFailed
func checkResponseStatus(resp *http.Response) error {
	if IsSuccess(resp.StatusCode) {
		return nil
	}

	errType := apperrors.ExecutionFailed
	switch {
	case resp.StatusCode >= 500,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusRequestTimeout:
		errType = apperrors.Unavailable
	}

	urlStr := ""
	if resp.Request != nil && resp.Request.URL != nil {
		urlStr = RedactURL(resp.Request.URL)
	}

	var snippet string
	if resp.Body != nil {
		if b, err := io.ReadAll(io.LimitReader(resp.Body, maxSnippetBytes)); err == nil {
			snippet = strings.TrimSpace(string(b))
		}
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         urlStr,
		BodySnippet: snippet,
		Cause:       apperrors.Newf(errType, "허용되지 않은 HTTP 응답 상태입니다: %s", resp.Status),
	}
}
