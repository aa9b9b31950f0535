package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/darkkaiser/agileflow-probe/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// sensitiveQueryParams 로그에 남길 때 값을 가려야 하는 쿼리 파라미터
var sensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}

// HTTPLogger 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 상태 점검 엔드포인트(/api/health, /api/ready)는 폴링 주기마다 호출되므로 Debug 레벨로,
// 그 외 요청은 Info 레벨로 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			// 패닉이 발생해도 로그가 남도록 defer로 기록합니다.
			defer func() {
				latency := time.Since(start)

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = "0"
				}

				entry := applog.WithComponentAndFields(constants.ComponentHTTPLogger, applog.Fields{
					"method":        req.Method,
					"path":          req.URL.Path,
					"uri":           maskSensitiveQueryParams(req.RequestURI),
					"remote_ip":     c.RealIP(),
					"user_agent":    req.UserAgent(),
					"status":        res.Status,
					"bytes_in":      bytesIn,
					"bytes_out":     strconv.FormatInt(res.Size, 10),
					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),
					"request_id":    res.Header().Get(echo.HeaderXRequestID),
				})

				if isProbePath(req.URL.Path) {
					entry.Debug("HTTP 요청")
				} else {
					entry.Info("HTTP 요청")
				}
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

func isProbePath(path string) bool {
	return path == "/api/health" || path == "/api/ready"
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 가립니다. 파싱에 실패하면 원본을 반환합니다.
//
//	"/api/v1/targets?token=secret123&id=1" → "/api/v1/targets?id=1&token=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range sensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
