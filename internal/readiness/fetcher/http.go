package fetcher

import (
	"net/http"

	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
)

// HTTPFetcher *http.Client를 감싸는 기본 Fetcher 구현체입니다.
//
// 점검 요청의 타임아웃은 요청마다 Context로 지정하므로 클라이언트 전역 타임아웃은 두지 않습니다.
type HTTPFetcher struct {
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPFetcher{client: client}
}

// Do 요청을 전송합니다. User-Agent와 Accept 헤더가 없으면 기본값을 채웁니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", version.UserAgent())
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	return h.client.Do(req)
}
