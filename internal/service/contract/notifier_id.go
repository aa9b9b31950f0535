package contract

// NotifierID 알림 채널의 고유 ID 타입입니다.
// NOTE: config, monitor, notification 패키지가 공통으로 참조하므로 순환 참조를 피하기 위해 contract 패키지에 정의되었습니다.
type NotifierID string

// IsEmpty ID가 비어있는지 여부를 반환합니다. 빈 ID는 기본 알림 채널을 의미합니다.
func (id NotifierID) IsEmpty() bool {
	return id == ""
}

func (id NotifierID) String() string {
	return string(id)
}
