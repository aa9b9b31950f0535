package fetcher

import (
	"errors"
	"io"
	"net/http"
	"sync"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	// maxDrainBytes 커넥션 재사용을 위해 Body를 비울 때 읽는 최대 바이트 수 (64KB)
	// 이보다 큰 응답의 커넥션은 재사용되지 않고 닫힙니다.
	maxDrainBytes = 64 * 1024

	// DefaultMaxBodyBytes 점검 응답 본문의 기본 크기 제한 (1MB)
	DefaultMaxBodyBytes = 1 << 20
)

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody HTTP Keep-Alive 커넥션이 풀에 반환되도록 Body를 일정량 읽어서 버린 후 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}

// ReadJSON 응답 본문을 최대 maxBytes까지 읽어 유효한 JSON인지 검증하고, gjson.Result로 반환합니다.
// 본문은 함수 내에서 닫힙니다. maxBytes가 0 이하이면 DefaultMaxBodyBytes를 사용합니다.
//
// 반환 에러:
//   - 읽기 실패: Unavailable
//   - 크기 초과, 유효하지 않은 JSON: ParsingFailed
func ReadJSON(resp *http.Response, maxBytes int64) (gjson.Result, error) {
	if resp == nil || resp.Body == nil {
		return gjson.Result{}, apperrors.New(apperrors.ParsingFailed, "응답 본문이 없습니다")
	}
	defer drainAndCloseBody(resp.Body)

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	data, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, maxBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return gjson.Result{}, apperrors.Newf(apperrors.ParsingFailed, "응답 본문이 허용된 크기(%d bytes)를 초과했습니다", maxBytes)
		}
		return gjson.Result{}, apperrors.Wrap(err, apperrors.Unavailable, "응답 본문을 읽는 중 에러가 발생했습니다")
	}

	if !gjson.ValidBytes(data) {
		return gjson.Result{}, apperrors.New(apperrors.ParsingFailed, "응답 본문이 올바른 JSON 형식이 아닙니다")
	}

	return gjson.ParseBytes(data), nil
}
