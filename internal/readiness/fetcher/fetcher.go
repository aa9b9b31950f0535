// Package fetcher 준비 상태 점검 요청에 사용하는 HTTP 전송 계층을 제공합니다.
//
// 기본 구현(HTTPFetcher) 위에 상태 코드 검증(StatusCodeFetcher)과 로깅(LoggingFetcher)을
// 데코레이터로 겹쳐서 사용합니다.
//
//	f := fetcher.New(nil)
//	resp, err := fetcher.Get(ctx, f, "http://localhost:8080/api/health")
package fetcher

import (
	"context"
	"net/http"
)

// component 로깅용 컴포넌트 이름
const component = "readiness.fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 구현 시 주의사항:
//   - 성공 시 반환된 응답 객체의 Body는 호출자가 닫아야 합니다.
//   - Context가 취소되면 즉시 요청을 중단하고 에러를 반환해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// New 점검 요청용 기본 Fetcher 체인을 구성합니다.
//
//	LoggingFetcher -> StatusCodeFetcher -> HTTPFetcher
//
// client가 nil이면 http.DefaultTransport를 사용하는 새 클라이언트를 만듭니다.
func New(client *http.Client) Fetcher {
	return NewLoggingFetcher(NewStatusCodeFetcher(NewHTTPFetcher(client)))
}

// Get 지정된 URL로 GET 요청을 전송합니다.
// 요청이 실패했는데 응답 객체가 남아 있으면 커넥션 재사용을 위해 Body를 비우고 닫습니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	return resp, nil
}
