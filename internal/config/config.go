package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/assist-by/bollinger/internal/analysis/indicator"
	"github.com/assist-by/bollinger/internal/domain"
)

// 지원하는 출력 형식
const (
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

// BollingerInputs는 볼린저 밴드 입력 설정입니다.
// 문자열 값은 Option에서 허용 범위로 보정됩니다
type BollingerInputs struct {
	Length     int     `envconfig:"BB_LENGTH" default:"20" yaml:"length"`
	MAType     string  `envconfig:"BB_MA_TYPE" default:"SMA" yaml:"maType"`
	Source     string  `envconfig:"BB_SOURCE" default:"close" yaml:"source"`
	Multiplier float64 `envconfig:"BB_MULTIPLIER" default:"2" yaml:"multiplier"`
	Offset     int     `envconfig:"BB_OFFSET" default:"0" yaml:"offset"`
}

// Option은 입력 설정을 계산용 옵션으로 변환합니다.
// 알 수 없는 source는 close, 알 수 없는 maType은 SMA가 됩니다
func (in BollingerInputs) Option() indicator.BollingerOption {
	return indicator.BollingerOption{
		Length:     in.Length,
		Source:     domain.ParseSource(in.Source),
		MAType:     domain.ParseMAType(in.MAType),
		Multiplier: in.Multiplier,
		Offset:     in.Offset,
	}
}

type Config struct {
	// 볼린저 밴드 설정
	Bollinger BollingerInputs

	// 애플리케이션 설정
	App struct {
		DataFile     string `envconfig:"DATA_FILE"`
		SettingsFile string `envconfig:"SETTINGS_FILE"`
		OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"json"`
	}

	// 로그 설정
	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
// 볼린저 입력값은 검증하지 않고 Option에서 보정합니다
func ValidateConfig(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL이 올바르지 않습니다: %s", cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT은 text 또는 json이어야 합니다: %s", cfg.Log.Format)
	}

	switch cfg.App.OutputFormat {
	case OutputJSON, OutputNDJSON:
	default:
		return fmt.Errorf("OUTPUT_FORMAT은 %s 또는 %s이어야 합니다: %s", OutputJSON, OutputNDJSON, cfg.App.OutputFormat)
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
// envFiles가 없으면 현재 디렉터리의 .env를 읽고, 파일이 없어도 계속 진행합니다
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env 파일 로드
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정 파일이 있으면 볼린저 입력값을 덮어씀
	if cfg.App.SettingsFile != "" {
		if err := ApplySettingsFile(cfg.App.SettingsFile, &cfg.Bollinger); err != nil {
			return nil, err
		}
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}
