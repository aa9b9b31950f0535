// Package readiness AgileFlow 백엔드의 헬스체크(/api/health)와 준비 상태(/api/ready) 엔드포인트를
// 점검하는 Poller를 제공합니다.
//
// 한 번의 점검(CheckOnce)은 두 엔드포인트를 순서대로 호출하며, 두 응답이 모두 2xx이고
// status 필드가 각각 "ok", "ready"일 때만 준비 완료로 판단합니다.
// WaitUntilReady는 최대 대기 시간이 지날 때까지 일정한 간격으로 점검을 반복합니다.
package readiness

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/readiness/fetcher"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/tidwall/gjson"
)

// component 로깅용 컴포넌트 이름
const component = "readiness.poller"

const (
	// HealthPath 헬스체크(liveness) 엔드포인트 경로
	HealthPath = "/api/health"

	// ReadyPath 준비 상태(readiness) 엔드포인트 경로
	ReadyPath = "/api/ready"

	// HealthyStatus 헬스체크 응답의 status 필드 기대값
	HealthyStatus = "ok"

	// ReadyStatus 준비 상태 응답의 status 필드 기대값
	ReadyStatus = "ready"
)

// Poller 대상 서비스의 준비 상태를 점검합니다.
// 생성 이후에는 변경되지 않으므로 여러 고루틴에서 동시에 사용해도 안전합니다.
type Poller struct {
	baseURL   string
	healthURL string
	readyURL  string

	healthTimeout time.Duration
	readyTimeout  time.Duration
	maxWait       time.Duration
	pollInterval  time.Duration

	clock      clock.Clock
	fetcher    fetcher.Fetcher
	httpClient *http.Client
}

// New 점검 대상의 기본 URL(예: http://localhost:8080)로 Poller를 생성합니다.
// baseURL은 스킴과 호스트를 포함한 절대 URL이어야 합니다.
func New(baseURL string, opts ...Option) (*Poller, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	p := &Poller{
		baseURL:   normalized,
		healthURL: normalized + HealthPath,
		readyURL:  normalized + ReadyPath,

		healthTimeout: DefaultHealthTimeout,
		readyTimeout:  DefaultReadyTimeout,
		maxWait:       DefaultMaxWait,
		pollInterval:  DefaultPollInterval,

		clock: clock.NewClock(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	if p.fetcher == nil {
		p.fetcher = fetcher.New(p.httpClient)
	}

	return p, nil
}

func normalizeBaseURL(baseURL string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return "", apperrors.New(apperrors.InvalidInput, "점검 대상 URL(baseURL)이 지정되지 않았습니다")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.InvalidInput, "점검 대상 URL(%s)을 해석할 수 없습니다", fetcher.RedactRawURL(trimmed))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperrors.Newf(apperrors.InvalidInput, "점검 대상 URL(%s)은 http 또는 https 스킴을 가진 절대 URL이어야 합니다", fetcher.RedactURL(u))
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", apperrors.Newf(apperrors.InvalidInput, "점검 대상 URL(%s)에는 쿼리나 프래그먼트를 포함할 수 없습니다", fetcher.RedactURL(u))
	}

	return trimmed, nil
}

func (p *Poller) validate() error {
	switch {
	case p.healthTimeout <= 0:
		return apperrors.Newf(apperrors.InvalidInput, "헬스체크 타임아웃은 0보다 커야 합니다: %s", p.healthTimeout)
	case p.readyTimeout <= 0:
		return apperrors.Newf(apperrors.InvalidInput, "준비 상태 타임아웃은 0보다 커야 합니다: %s", p.readyTimeout)
	case p.maxWait <= 0:
		return apperrors.Newf(apperrors.InvalidInput, "최대 대기 시간은 0보다 커야 합니다: %s", p.maxWait)
	case p.pollInterval <= 0:
		return apperrors.Newf(apperrors.InvalidInput, "점검 간격은 0보다 커야 합니다: %s", p.pollInterval)
	case p.clock == nil:
		return apperrors.New(apperrors.InvalidInput, "시계(clock)가 지정되지 않았습니다")
	}
	return nil
}

// BaseURL 정규화된(끝의 '/'가 제거된) 점검 대상 URL을 반환합니다.
func (p *Poller) BaseURL() string {
	return p.baseURL
}

// Check 헬스체크와 준비 상태 엔드포인트를 한 번 점검하고, 준비되지 않았다면 그 원인을 반환합니다.
//
// 헬스체크 요청이 실패하거나(네트워크 오류, 2xx 외 응답, JSON 파싱 실패) 하면 준비 상태 요청은 보내지 않습니다.
// 헬스체크 응답이 정상적으로 수신되었다면 status 값과 관계없이 준비 상태 요청까지 보낸 뒤 두 값을 함께 판정합니다.
func (p *Poller) Check(ctx context.Context) error {
	health, err := p.probe(ctx, p.healthURL, p.healthTimeout)
	if err != nil {
		return apperrors.Wrap(err, apperrors.UnderlyingType(err), "헬스체크 요청이 실패했습니다")
	}

	ready, err := p.probe(ctx, p.readyURL, p.readyTimeout)
	if err != nil {
		return apperrors.Wrap(err, apperrors.UnderlyingType(err), "준비 상태 요청이 실패했습니다")
	}

	if got := health.Get("status").String(); got != HealthyStatus {
		return apperrors.Newf(apperrors.Unavailable, "헬스체크 상태가 %q입니다 (기대값: %q)", got, HealthyStatus)
	}
	if got := ready.Get("status").String(); got != ReadyStatus {
		return apperrors.Newf(apperrors.Unavailable, "준비 상태가 %q입니다 (기대값: %q)", got, ReadyStatus)
	}

	return nil
}

// CheckOnce 한 번 점검하여 준비 완료 여부를 반환합니다.
// 어떤 실패도 에러나 패닉으로 전파하지 않고 false로 정규화하며, 원인은 Warn 로그로 남깁니다.
func (p *Poller) CheckOnce(ctx context.Context) bool {
	if err := p.Check(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"base_url":   fetcher.RedactRawURL(p.baseURL),
			"error_type": apperrors.UnderlyingType(err).String(),
			"error":      err.Error(),
		}).Warn("대상 서비스가 아직 준비되지 않았습니다")

		return false
	}

	return true
}

// WaitUntilReady 대상 서비스가 준비될 때까지 pollInterval 간격으로 점검을 반복합니다.
//
// 첫 점검이 성공하면 즉시 true를 반환하고, 경과 시간이 maxWait에 도달할 때까지 모든 점검이
// 실패하면 false를 반환합니다. 간격은 고정이며 지수 백오프는 적용하지 않습니다.
// ctx가 취소되면 그 시점에 false를 반환합니다.
func (p *Poller) WaitUntilReady(ctx context.Context) bool {
	start := p.clock.Now()
	attempts := 0

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"base_url":      fetcher.RedactRawURL(p.baseURL),
		"max_wait":      p.maxWait.String(),
		"poll_interval": p.pollInterval.String(),
	})

	for p.clock.Since(start) < p.maxWait {
		if ctx.Err() != nil {
			break
		}

		attempts++
		if p.CheckOnce(ctx) {
			logger.WithFields(applog.Fields{
				"attempts": attempts,
				"elapsed":  p.clock.Since(start).String(),
			}).Info("대상 서비스가 준비되었습니다")

			return true
		}

		if !p.sleep(ctx) {
			break
		}
	}

	fields := applog.Fields{
		"attempts": attempts,
		"elapsed":  p.clock.Since(start).String(),
	}
	if err := ctx.Err(); err != nil {
		fields["error"] = err.Error()
		logger.WithFields(fields).Warn("대기가 취소되었습니다")
	} else {
		logger.WithFields(fields).Warn("최대 대기 시간 내에 대상 서비스가 준비되지 않았습니다")
	}

	return false
}

// sleep pollInterval만큼 대기합니다. ctx가 먼저 취소되면 false를 반환합니다.
func (p *Poller) sleep(ctx context.Context) bool {
	timer := p.clock.NewTimer(p.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C():
		return true
	}
}

// probe 요청 한 건을 독립된 타임아웃으로 보내고 응답 본문을 JSON으로 해석합니다.
func (p *Poller) probe(ctx context.Context, target string, timeout time.Duration) (gjson.Result, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := fetcher.Get(reqCtx, p.fetcher, target)
	if err != nil {
		return gjson.Result{}, classify(err, timeout)
	}

	// 주입된 Fetcher가 상태 코드를 검사하지 않더라도 2xx 외 응답은 실패로 처리합니다.
	if err := fetcher.CheckStatus(resp); err != nil {
		return gjson.Result{}, err
	}

	body, err := fetcher.ReadJSON(resp, fetcher.DefaultMaxBodyBytes)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return gjson.Result{}, apperrors.Wrapf(err, apperrors.Timeout, "응답 본문 수신 중 요청 시간(%s)이 초과되었습니다", timeout)
		}
		return gjson.Result{}, err
	}

	return body, nil
}

// classify 전송 계층의 에러를 도메인 에러 타입으로 분류합니다.
func classify(err error, timeout time.Duration) error {
	var statusErr *fetcher.HTTPStatusError
	switch {
	case errors.As(err, &statusErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrapf(err, apperrors.Timeout, "요청 시간(%s)이 초과되었습니다", timeout)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.Unavailable, "요청이 취소되었습니다")
	default:
		return apperrors.Wrap(err, apperrors.Unavailable, "대상 서비스에 연결할 수 없습니다")
	}
}
