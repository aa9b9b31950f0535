package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/agileflow-probe/internal/pkg/errors"
	"github.com/darkkaiser/agileflow-probe/internal/readiness"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일명과 User-Agent 등에 사용됩니다.
	AppName string = "agileflow-probe"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)가 계층 구분자입니다. 예: PROBE_POLLER__MAX_WAIT=90s -> poller.max_wait
	EnvPrefix = "PROBE_"

	// DefaultListenPort 상태 API 서버의 기본 포트
	DefaultListenPort = 2480

	// DefaultStorageDir 점검 상태 스냅샷의 기본 저장 디렉토리
	DefaultStorageDir = "data"
)

// newDefaultConfig 설정 파일에 값이 없을 때 적용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Poller: PollerConfig{
			HealthTimeout: readiness.DefaultHealthTimeout,
			ReadyTimeout:  readiness.DefaultReadyTimeout,
			MaxWait:       readiness.DefaultMaxWait,
			PollInterval:  readiness.DefaultPollInterval,
		},
		StatusAPI: StatusAPIConfig{
			ListenPort: DefaultListenPort,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
		Storage: StorageConfig{
			Dir: DefaultStorageDir,
		},
	}
}

// Load 기본 설정 파일(DefaultFilename)을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일을 읽어 AppConfig를 생성합니다.
//
// 우선순위 (낮음 -> 높음): 기본값 -> JSON 설정 파일 -> 환경 변수(PROBE_)
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 변환 (정의되지 않은 키가 있으면 에러)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 정합성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 예: PROBE_STATUS_API__LISTEN_PORT -> status_api.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
