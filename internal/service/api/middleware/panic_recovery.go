package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/httputil"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize 패닉 스택 트레이스를 담을 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 패닉을 복구하고 스택 트레이스와 함께 기록한 뒤 에러 핸들러로 넘깁니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// 클라이언트 연결 중단 신호는 net/http가 처리하도록 그대로 전파합니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err, ok := r.(error)
				if !ok {
					err = newErrPanicRecovered(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error": err,
					"stack": string(stack[:length]),
					"path":  c.Request().URL.Path,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentPanicRecovery, fields).Error("패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다")

				returnErr = httputil.NewInternalServerError(constants.ErrMsgInternalServer)
			}()

			return next(c)
		}
	}
}
