// Package mark 알림 메시지에 사용하는 상태 이모지를 관리합니다.
package mark

import "github.com/darkkaiser/agileflow-probe/internal/service/contract"

// Mark 상태를 나타내는 이모지
type Mark string

const (
	// 준비됨
	Ready Mark = "✅"

	// 준비되지 않음
	NotReady Mark = "🚨"

	// 아직 점검 전
	Unknown Mark = "❔"
)

// ForState 점검 대상 상태에 해당하는 마크를 반환합니다.
func ForState(state contract.TargetState) Mark {
	switch state {
	case contract.TargetStateReady:
		return Ready
	case contract.TargetStateNotReady:
		return NotReady
	default:
		return Unknown
	}
}

// WithSpace 마크(이모지) 앞에 구분용 공백을 추가하여 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

// String 마크의 순수 이모지 값을 문자열로 반환합니다.
func (m Mark) String() string {
	return string(m)
}
