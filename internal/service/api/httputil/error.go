package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/agileflow-probe/internal/service/api/constants"
	"github.com/darkkaiser/agileflow-probe/internal/service/api/model/response"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 전역 에러 핸들러입니다.
//
// 모든 에러를 {"result_code": N, "message": "..."} 형식으로 변환하고,
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case response.ErrorResponse:
			message = m.Message
		case string:
			message = m
		}
	}

	// 라우트가 없을 때 echo가 만드는 "Not Found"는 한국어 메시지로 통일합니다.
	if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = constants.ErrMsgNotFound
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	switch {
	case code >= http.StatusInternalServerError:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	case code >= http.StatusBadRequest:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
