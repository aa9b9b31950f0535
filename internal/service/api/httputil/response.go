// Package httputil 상태 API의 표준 에러 응답을 만들고 렌더링합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}
