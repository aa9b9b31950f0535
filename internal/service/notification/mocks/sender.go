// Package mocks 알림 서비스의 테스트 대역을 제공합니다.
package mocks

import (
	"sync"

	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
)

var (
	_ contract.NotificationSender        = (*MockNotificationSender)(nil)
	_ contract.NotificationHealthChecker = (*MockNotificationSender)(nil)
)

// MockNotificationSender 발송 요청을 기록하는 테스트용 NotificationSender 구현체입니다.
type MockNotificationSender struct {
	mu sync.Mutex

	notifications []contract.Notification

	// Err 설정되면 모든 발송 요청에 이 에러를 반환합니다 (요청은 기록됩니다).
	Err error

	// HealthErr Health()가 반환할 에러
	HealthErr error
}

// NewMockNotificationSender 새로운 Mock 객체를 생성합니다.
func NewMockNotificationSender() *MockNotificationSender {
	return &MockNotificationSender{}
}

func (m *MockNotificationSender) Notify(notification contract.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, notification)
	return m.Err
}

func (m *MockNotificationSender) NotifyDefault(message string) error {
	return m.Notify(contract.NewNotification(message))
}

func (m *MockNotificationSender) NotifyDefaultWithError(message string) error {
	return m.Notify(contract.NewErrorNotification(message))
}

func (m *MockNotificationSender) Health() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.HealthErr
}

// Notifications 지금까지 기록된 발송 요청의 복사본을 반환합니다.
func (m *MockNotificationSender) Notifications() []contract.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]contract.Notification(nil), m.notifications...)
}

// Reset 기록된 발송 요청을 모두 지웁니다.
func (m *MockNotificationSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = nil
}
