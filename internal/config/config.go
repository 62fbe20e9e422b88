package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/canary-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "canary-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 참조하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정값을 덮어쓰는 환경 변수의 접두사입니다.
	EnvPrefix = "CANARY_"

	// DefaultListenPort 웹 서버 기본 포트
	DefaultListenPort = 8080
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	CanaryAPI CanaryAPIConfig `json:"canary_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	return c.CanaryAPI.validate(v)
}

// VerifyRecommendations 강제하지는 않지만 운영상 권장되지 않는 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.CanaryAPI.WS.VerifyRecommendations()
}

// CanaryAPIConfig 카나리 API 서버 설정 구조체
type CanaryAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *CanaryAPIConfig) validate(v *validator.Validate) error {
	if err := c.WS.validate(v); err != nil {
		return err
	}
	return c.CORS.validate(v)
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate(v *validator.Validate) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	fieldErr := validationErrors[0]
	switch fieldErr.StructField() {
	case "ListenPort":
		return apperrors.Newf(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다: %v", fieldErr.Value())
	case "TLSCertFile":
		if fieldErr.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 인증서 파일 경로(tls_cert_file)는 필수입니다")
		}
		return apperrors.Newf(apperrors.NotFound, "지정된 TLS 인증서 파일(tls_cert_file)을 찾을 수 없습니다: '%v'", fieldErr.Value())
	case "TLSKeyFile":
		if fieldErr.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 키 파일 경로(tls_key_file)는 필수입니다")
		}
		return apperrors.Newf(apperrors.NotFound, "지정된 TLS 키 파일(tls_key_file)을 찾을 수 없습니다: '%v'", fieldErr.Value())
	}

	return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정이 올바르지 않습니다")
}

// VerifyRecommendations 시스템 예약 포트 사용 여부를 진단합니다.
func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책 설정 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	if err := v.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && validationErrors[0].Tag() == "cors_origin" {
			return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", validationErrors[0].Value())
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

// newDefaultConfig 설정 파일과 환경 변수가 모두 비어 있을 때 사용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		CanaryAPI: CanaryAPIConfig{
			WS: WSConfig{
				ListenPort: DefaultListenPort,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
	}
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 예: CANARY_CANARY_API__WS__LISTEN_PORT -> canary_api.ws.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순으로 병합하여 AppConfig 객체를 생성합니다.
//
// 설정 파일이 존재하지 않으면 기본값과 환경 변수만으로 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링, 정의되지 않은 키가 있으면 실패
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &appConfig, nil
}
