package readiness

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/darkkaiser/agileflow-probe/internal/readiness/fetcher"
)

const (
	// DefaultHealthTimeout 헬스체크(/api/health) 요청 한 건의 타임아웃
	DefaultHealthTimeout = 10 * time.Second

	// DefaultReadyTimeout 준비 상태(/api/ready) 요청 한 건의 타임아웃
	DefaultReadyTimeout = 5 * time.Second

	// DefaultMaxWait WaitUntilReady의 기본 최대 대기 시간
	DefaultMaxWait = 60 * time.Second

	// DefaultPollInterval WaitUntilReady의 기본 점검 간격
	DefaultPollInterval = 2 * time.Second
)

// Option Poller 생성 시 적용할 선택 설정입니다.
type Option func(*Poller)

// WithHealthTimeout 헬스체크 요청의 타임아웃을 지정합니다.
func WithHealthTimeout(d time.Duration) Option {
	return func(p *Poller) { p.healthTimeout = d }
}

// WithReadyTimeout 준비 상태 요청의 타임아웃을 지정합니다.
func WithReadyTimeout(d time.Duration) Option {
	return func(p *Poller) { p.readyTimeout = d }
}

// WithMaxWait WaitUntilReady의 최대 대기 시간을 지정합니다.
func WithMaxWait(d time.Duration) Option {
	return func(p *Poller) { p.maxWait = d }
}

// WithPollInterval WaitUntilReady의 점검 간격을 지정합니다.
func WithPollInterval(d time.Duration) Option {
	return func(p *Poller) { p.pollInterval = d }
}

// WithClock 대기에 사용할 시계를 지정합니다. 테스트에서는 fakeclock을 주입합니다.
func WithClock(c clock.Clock) Option {
	return func(p *Poller) { p.clock = c }
}

// WithFetcher 요청에 사용할 Fetcher를 지정합니다.
// 2xx가 아닌 응답은 Fetcher 구현과 관계없이 준비되지 않은 것으로 판정합니다.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(p *Poller) { p.fetcher = f }
}

// WithHTTPClient 기본 Fetcher 체인이 사용할 *http.Client를 지정합니다.
// WithFetcher와 함께 지정하면 WithFetcher가 우선합니다.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Poller) { p.httpClient = c }
}
