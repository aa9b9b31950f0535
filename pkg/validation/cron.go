package validation

import (
	"fmt"

	"github.com/darkkaiser/agileflow-probe/pkg/cronx"
)

// ValidateCronExpression 점검 스케줄 표현식을 cronx.StandardParser로 해석할 수 있는지 검사합니다.
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
