package contract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Notification 알림 채널로 전달되는 한 건의 알림입니다.
type Notification struct {
	// NotifierID 발송할 알림 채널 (비어있으면 기본 채널)
	NotifierID NotifierID

	// Title 메시지 상단에 강조되어 표시되는 제목 (예: 점검 대상 이름)
	Title string

	Message string

	// ErrorOccurred 장애 성격의 알림인지 여부
	ErrorOccurred bool
}

// NewNotification 기본 채널로 보내는 일반 알림을 생성합니다.
func NewNotification(message string) Notification {
	return Notification{Message: message}
}

// NewErrorNotification 기본 채널로 보내는 장애 알림을 생성합니다.
func NewErrorNotification(message string) Notification {
	return Notification{Message: message, ErrorOccurred: true}
}

// Validate 알림 본문이 비어있지 않은지 검사합니다.
func (n Notification) Validate() error {
	if strings.TrimSpace(n.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}

// String 로그 출력용 요약 문자열을 반환합니다. 본문은 50자까지만 포함됩니다.
func (n Notification) String() string {
	notifier := "default"
	if !n.NotifierID.IsEmpty() {
		notifier = string(n.NotifierID)
	}

	preview := n.Message
	if utf8.RuneCountInString(preview) > 50 {
		preview = string([]rune(preview)[:47]) + "..."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "notifier=%s", notifier)
	if n.Title != "" {
		fmt.Fprintf(&sb, " title=%q", n.Title)
	}
	if n.ErrorOccurred {
		sb.WriteString(" error=true")
	}
	fmt.Fprintf(&sb, " msg=%q", preview)

	return sb.String()
}

// NotificationSender 알림 발송 기능을 제공하는 인터페이스입니다.
// 모니터와 같은 클라이언트는 이 인터페이스를 통해 알림 서비스를 사용합니다.
type NotificationSender interface {
	// Notify 지정된 알림 채널로 알림을 발송합니다. notification.NotifierID가 비어있으면 기본 채널을 사용합니다.
	//
	// 반환값:
	//   - error: 발송 요청이 대기열에 등록(실제 전송 결과와는 무관)되면 nil, 실패 시 에러 반환
	Notify(notification Notification) error

	// NotifyDefault 기본 알림 채널로 일반 메시지를 발송합니다.
	NotifyDefault(message string) error

	// NotifyDefaultWithError 기본 알림 채널로 "오류" 성격의 메시지를 발송합니다.
	NotifyDefaultWithError(message string) error
}

// NotificationHealthChecker Notification 서비스의 상태를 확인하는 인터페이스입니다.
type NotificationHealthChecker interface {
	// Health 서비스가 정상적으로 실행 중이면 nil, 그렇지 않으면 에러를 반환합니다.
	Health() error
}
