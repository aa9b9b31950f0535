package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/httputil"
)

// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

func newErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
