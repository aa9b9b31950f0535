// Package telegram 텔레그램 봇 API로 알림을 발송하는 Notifier를 제공합니다.
package telegram

import (
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "notification.notifier.telegram"

const (
	// messageMaxLength 한 번에 전송하는 메시지의 최대 바이트 수
	// 텔레그램 제한(4096자)보다 작게 잡아 HTML 태그와 멀티바이트 문자에 여유를 둡니다.
	messageMaxLength = 3900

	// bufferSize 발송 대기열 크기
	// 종료 시 rateLimit(1 TPS)로 shutdownTimeout 안에 모두 처리할 수 있는 크기입니다.
	bufferSize = 30

	// enqueueTimeout 대기열이 가득 찼을 때 요청을 버리기 전까지 기다리는 시간
	enqueueTimeout = 5 * time.Second

	// rateLimit, rateBurst 텔레그램 API 권장값(채팅방당 초당 1회)에 맞춘 발송 속도 제한
	rateLimit = 1
	rateBurst = 5

	// httpClientTimeout 텔레그램 API HTTP 요청 타임아웃
	httpClientTimeout = 30 * time.Second

	// sendTimeout 알림 한 건(분할된 조각 포함)을 전송하는 데 허용하는 최대 시간
	sendTimeout = 60 * time.Second

	// maxRetries 일시적 오류(429, 5xx) 발생 시 최대 시도 횟수
	maxRetries = 3

	// defaultRetryDelay 서버가 Retry-After를 주지 않았을 때의 재시도 대기 시간
	defaultRetryDelay = time.Second

	// shutdownTimeout 종료 시 대기열에 남은 메시지를 처리하는 최대 시간
	shutdownTimeout = 60 * time.Second

	// pendingSendsTimeout 종료 시 진행 중인 발송 요청의 대기열 등록을 기다리는 최대 시간
	pendingSendsTimeout = 5 * time.Second
)

// client 텔레그램 봇 API와의 통신을 추상화한 인터페이스입니다.
type client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramNotifier 텔레그램 채팅방으로 알림을 발송하는 Notifier 구현체입니다.
type telegramNotifier struct {
	*notifier.Base

	chatID int64

	client client

	limiter *rate.Limiter

	retryDelay      time.Duration
	shutdownTimeout time.Duration
}
