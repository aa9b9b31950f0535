package config

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
)

// AppConfig 애플리케이션의 모든 설정을 담는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Poller    PollerConfig    `json:"poller"`
	Targets   []TargetConfig  `json:"targets"`
	Notifiers NotifierConfig  `json:"notifiers"`
	StatusAPI StatusAPIConfig `json:"status_api"`
	Storage   StorageConfig   `json:"storage"`
}

// validate 설정 로드 직후 각 항목의 정합성을 검사합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(validate, c.Poller, "폴러(poller)"); err != nil {
		return err
	}

	notifierIDs, err := c.Notifiers.validate()
	if err != nil {
		return err
	}

	if err := c.validateTargets(notifierIDs); err != nil {
		return err
	}

	if err := c.StatusAPI.validate(); err != nil {
		return err
	}

	return checkStruct(validate, c.Storage, "저장소(storage)")
}

func (c *AppConfig) validateTargets(notifierIDs []string) error {
	if len(c.Targets) == 0 {
		return apperrors.New(apperrors.InvalidInput, "점검 대상(targets)이 1개 이상 정의되어야 합니다")
	}

	if err := checkUniqueField(validate, c.Targets, "ID", "점검 대상(Target)"); err != nil {
		return err
	}

	for _, t := range c.Targets {
		if err := checkStruct(validate, t, fmt.Sprintf("Target['%s']", t.ID)); err != nil {
			return err
		}

		if t.NotifierID != "" && !slices.Contains(notifierIDs, t.NotifierID) {
			return apperrors.New(apperrors.NotFound, fmt.Sprintf("Target['%s']에서 참조하는 NotifierID('%s')가 정의되지 않았습니다", t.ID, t.NotifierID))
		}
	}

	return nil
}

// VerifyRecommendations 서비스는 구동되지만 권장되지 않는 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.StatusAPI.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.StatusAPI.ListenPort))
	}

	if c.Poller.PollInterval < time.Second {
		warnings = append(warnings, fmt.Sprintf("점검 간격(poll_interval: %s)이 1초보다 짧습니다. 대상 서비스에 부하를 줄 수 있습니다", c.Poller.PollInterval))
	}

	if len(c.Notifiers.Telegrams) == 0 {
		for _, t := range c.Targets {
			if t.Notify {
				warnings = append(warnings, "알림(notify)이 켜진 점검 대상이 있지만 텔레그램 알림 채널이 없습니다. 상태 변화는 로그로만 기록됩니다")
				break
			}
		}
	}

	return warnings
}

// PollerConfig 준비 상태 점검 요청의 타임아웃과 대기 정책
type PollerConfig struct {
	HealthTimeout time.Duration `json:"health_timeout" validate:"gt=0"`
	ReadyTimeout  time.Duration `json:"ready_timeout" validate:"gt=0"`
	MaxWait       time.Duration `json:"max_wait" validate:"gt=0"`
	PollInterval  time.Duration `json:"poll_interval" validate:"gt=0"`
}

// TargetConfig 주기적으로 점검할 AgileFlow 인스턴스
type TargetConfig struct {
	ID       string `json:"id" validate:"required"`
	Title    string `json:"title"`
	BaseURL  string `json:"base_url" validate:"required,http_url"`
	Schedule string `json:"schedule" validate:"required,cron_spec"`

	// Notify 준비 상태가 바뀔 때 알림을 보낼지 여부
	Notify bool `json:"notify"`

	// NotifierID 알림을 보낼 채널 (비어있으면 기본 채널)
	NotifierID string `json:"notifier_id"`
}

// DisplayName 알림 메시지에 표시할 이름을 반환합니다.
func (t TargetConfig) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	return t.ID
}

// NotifierConfig 알림 채널 설정
type NotifierConfig struct {
	DefaultNotifierID string           `json:"default_notifier_id"`
	Telegrams         []TelegramConfig `json:"telegrams"`
}

// validate 알림 채널을 검사하고 정의된 채널 ID 목록을 반환합니다.
// 채널이 하나도 없으면 기본 채널 ID도 비어있어야 합니다.
func (c *NotifierConfig) validate() ([]string, error) {
	if err := checkUniqueField(validate, c.Telegrams, "ID", "알림 채널(Notifier)"); err != nil {
		return nil, err
	}

	notifierIDs := make([]string, 0, len(c.Telegrams))
	for _, telegram := range c.Telegrams {
		if err := checkStruct(validate, telegram, fmt.Sprintf("Telegram Notifier['%s']", telegram.ID)); err != nil {
			return nil, err
		}
		notifierIDs = append(notifierIDs, telegram.ID)
	}

	if len(notifierIDs) == 0 {
		if c.DefaultNotifierID != "" {
			return nil, apperrors.New(apperrors.NotFound, fmt.Sprintf("기본 NotifierID('%s')가 지정되었지만 정의된 알림 채널이 없습니다", c.DefaultNotifierID))
		}
		return notifierIDs, nil
	}

	if !slices.Contains(notifierIDs, c.DefaultNotifierID) {
		return nil, apperrors.New(apperrors.NotFound, fmt.Sprintf("기본 NotifierID('%s')가 정의된 알림 채널 목록에 존재하지 않습니다", c.DefaultNotifierID))
	}

	return notifierIDs, nil
}

// TelegramConfig 텔레그램 봇 토큰과 채팅 ID
type TelegramConfig struct {
	ID       string `json:"id" validate:"required"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}

// StatusAPIConfig 상태 API 서버 설정
type StatusAPIConfig struct {
	ListenPort int        `json:"listen_port" validate:"min=1,max=65535"`
	CORS       CORSConfig `json:"cors"`
}

func (c *StatusAPIConfig) validate() error {
	if err := checkStruct(validate, c, "상태 API(status_api)"); err != nil {
		return err
	}

	return c.CORS.validate()
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}

	return checkStruct(validate, c, "CORS")
}

// StorageConfig 점검 상태 스냅샷 저장소 설정
type StorageConfig struct {
	Dir string `json:"dir" validate:"required"`
}
