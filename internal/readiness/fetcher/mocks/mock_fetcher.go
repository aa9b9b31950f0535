// Package mocks readiness/fetcher 패키지의 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"

	"github.com/darkkaiser/agileflow-probe/internal/readiness/fetcher"
	"github.com/stretchr/testify/mock"
)

var _ fetcher.Fetcher = (*MockFetcher)(nil)

// MockFetcher testify/mock 기반의 Fetcher Mock 구현체입니다.
//
//	m := mocks.NewMockFetcher()
//	m.On("Do", mock.Anything).Return(mocks.NewMockResponse(`{"status":"ok"}`, 200), nil)
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher 인스턴스를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockResponse 주어진 본문과 상태 코드를 가진 http.Response를 생성합니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

// PathIs 요청 경로가 path와 일치하는지 검사하는 mock.MatchedBy 인자를 반환합니다.
func PathIs(path string) any {
	return mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Path == path
	})
}
