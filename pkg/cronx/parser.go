// Package cronx 점검 스케줄에 사용하는 robfig/cron 설정을 한 곳에 모읍니다.
//
// 스케줄 표현식은 초 단위를 포함한 6필드(초 분 시 일 월 요일)와 디스크립터(@every 30s, @hourly 등)를 지원합니다.
// 표준 5필드 표현식은 허용하지 않습니다.
package cronx

import (
	"github.com/robfig/cron/v3"
)

// StandardParser 6필드 표현식과 디스크립터를 해석하는 파서를 반환합니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// New StandardParser와 로거가 설정된 cron 엔진을 생성합니다.
//
// 모든 작업은 패닉 복구(Recover)와 중복 실행 방지(SkipIfStillRunning) 체인으로 감싸집니다.
// 이전 실행이 끝나지 않은 작업의 다음 실행은 건너뜁니다.
func New(component string) *cron.Cron {
	logger := NewLogger(component)

	return cron.New(
		cron.WithParser(StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)
}
