package telegram

import (
	"net/http"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/darkkaiser/agileflow-probe/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// NewCreator 설정 파일의 텔레그램 채널마다 Notifier를 생성하는 CreatorFunc를 반환합니다.
func NewCreator() notifier.CreatorFunc {
	return buildCreator(newNotifier)
}

type constructor func(id contract.NotifierID, tc config.TelegramConfig, debug bool) (notifier.Notifier, error)

func buildCreator(create constructor) notifier.CreatorFunc {
	return func(appConfig *config.AppConfig) ([]notifier.Notifier, error) {
		var notifiers []notifier.Notifier

		for _, tc := range appConfig.Notifiers.Telegrams {
			n, err := create(contract.NotifierID(tc.ID), tc, appConfig.Debug)
			if err != nil {
				return nil, err
			}
			notifiers = append(notifiers, n)
		}

		return notifiers, nil
	}
}

// newNotifier 텔레그램 봇 API 클라이언트를 초기화하여 Notifier를 생성합니다.
// 봇 API 클라이언트 생성 시 getMe 호출로 토큰을 검증하므로 네트워크 연결이 필요합니다.
func newNotifier(id contract.NotifierID, tc config.TelegramConfig, debug bool) (notifier.Notifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": id,
		"bot_token":   strutil.MaskSensitiveData(tc.BotToken),
		"chat_id":     tc.ChatID,
	}).Debug("텔레그램 Notifier 초기화 및 봇 API 클라이언트 생성 시작")

	// 기본 http.Client는 타임아웃이 없으므로 명시적으로 지정합니다.
	httpClient := &http.Client{Timeout: httpClientTimeout}

	botAPI, err := tgbotapi.NewBotAPIWithClient(tc.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}
	botAPI.Debug = debug

	return newNotifierWithClient(id, tc.ChatID, botAPI), nil
}

// newNotifierWithClient 주입된 봇 API 클라이언트로 Notifier를 생성합니다.
func newNotifierWithClient(id contract.NotifierID, chatID int64, c client) *telegramNotifier {
	return &telegramNotifier{
		Base: notifier.NewBase(id, bufferSize, enqueueTimeout),

		chatID: chatID,

		client: c,

		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),

		retryDelay:      defaultRetryDelay,
		shutdownTimeout: shutdownTimeout,
	}
}
