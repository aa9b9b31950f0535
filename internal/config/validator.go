package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var (
	// 텔레그램 봇 토큰 형식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
	telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

	validate = newValidator()
)

// newValidator 커스텀 태그(http_url, cron_spec, cors_origin, telegram_bot_token)가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"http_url": func(fl validator.FieldLevel) bool {
			return validation.ValidateHTTPURL(fl.Field().String()) == nil
		},
		"cron_spec": func(fl validator.FieldLevel) bool {
			return validation.ValidateCronExpression(fl.Field().String()) == nil
		},
		"cors_origin": func(fl validator.FieldLevel) bool {
			return validation.ValidateCORSOrigin(fl.Field().String()) == nil
		},
		"telegram_bot_token": func(fl validator.FieldLevel) bool {
			return telegramBotTokenRegex.MatchString(fl.Field().String())
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

// checkStruct 태그 규칙에 따라 구조체를 검증하고, 첫 번째 실패를 사용자 친화적인 InvalidInput 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fieldErr := validationErrors[0]

	switch fieldErr.Tag() {
	case "http_url":
		cause := validation.ValidateHTTPURL(fmt.Sprint(fieldErr.Value()))
		return apperrors.Wrap(cause, apperrors.InvalidInput, fmt.Sprintf("%s의 점검 대상 URL(%s)이 올바르지 않습니다", contextName, fieldErr.Field()))
	case "cron_spec":
		cause := validation.ValidateCronExpression(fmt.Sprint(fieldErr.Value()))
		return apperrors.Wrap(cause, apperrors.InvalidInput, fmt.Sprintf("%s의 점검 스케줄(%s)이 올바르지 않습니다 (예: @every 30s, 0 */1 * * * *)", contextName, fieldErr.Field()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)", contextName))
	case "gt":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값은 0보다 커야 합니다: '%v'", contextName, fieldErr.Field(), fieldErr.Value()))
	case "min", "max":
		if fieldErr.StructField() == "ListenPort" {
			return apperrors.New(apperrors.InvalidInput, "상태 API 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
		}
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 필수 항목(%s)이 설정되지 않았습니다", contextName, fieldErr.Field()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fieldErr.Field(), fieldErr.Tag()))
}

// checkUniqueField 슬라이스 요소의 특정 필드 값이 서로 중복되지 않는지 검사합니다.
func checkUniqueField(v *validator.Validate, data any, fieldName, contextName string) error {
	if err := v.Var(data, "unique="+fieldName); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("중복된 %s ID가 존재합니다", contextName))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유일성 검증에 실패했습니다", contextName))
	}
	return nil
}
