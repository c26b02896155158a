package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/bollinger/internal/domain"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	opt := cfg.Bollinger.Option()
	assert.Equal(t, 20, opt.Length)
	assert.Equal(t, domain.SMA, opt.MAType)
	assert.Equal(t, domain.SourceClose, opt.Source)
	assert.Equal(t, 2.0, opt.Multiplier)
	assert.Equal(t, 0, opt.Offset)
	assert.Equal(t, OutputJSON, cfg.App.OutputFormat)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("BB_LENGTH", "10")
	t.Setenv("BB_SOURCE", "HIGH")
	t.Setenv("BB_MA_TYPE", "ema")
	t.Setenv("BB_MULTIPLIER", "1.5")
	t.Setenv("BB_OFFSET", "-3")
	t.Setenv("OUTPUT_FORMAT", "ndjson")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	opt := cfg.Bollinger.Option()
	assert.Equal(t, 10, opt.Length)
	assert.Equal(t, domain.SourceHigh, opt.Source)
	assert.Equal(t, domain.EMA, opt.MAType)
	assert.Equal(t, 1.5, opt.Multiplier)
	assert.Equal(t, -3, opt.Offset)
	assert.Equal(t, OutputNDJSON, cfg.App.OutputFormat)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BB_LENGTH=7\nBB_SOURCE=low\n"), 0o600))

	// godotenv가 설정한 값이 다음 테스트에 남지 않도록 복원
	t.Setenv("BB_LENGTH", "")
	t.Setenv("BB_SOURCE", "")
	os.Unsetenv("BB_LENGTH")
	os.Unsetenv("BB_SOURCE")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Bollinger.Length)
	assert.Equal(t, domain.SourceLow, cfg.Bollinger.Option().Source)
}

func TestLoadConfig_Fallback(t *testing.T) {
	t.Setenv("BB_SOURCE", "typical")
	t.Setenv("BB_MA_TYPE", "WMA")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	opt := cfg.Bollinger.Option()
	assert.Equal(t, domain.SourceClose, opt.Source)
	assert.Equal(t, domain.SMA, opt.MAType)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"숫자가 아닌 기간", "BB_LENGTH", "twenty"},
		{"잘못된 로그 레벨", "LOG_LEVEL", "loud"},
		{"잘못된 로그 형식", "LOG_FORMAT", "xml"},
		{"잘못된 출력 형식", "OUTPUT_FORMAT", "csv"},
		{"없는 설정 파일", "SETTINGS_FILE", "/nonexistent/bb.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_SettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bollinger:\n  length: 14\n  offset: 2\n"), 0o600))

	t.Setenv("SETTINGS_FILE", path)
	t.Setenv("BB_MULTIPLIER", "3")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Bollinger.Length)
	assert.Equal(t, 2, cfg.Bollinger.Offset)
	assert.Equal(t, 3.0, cfg.Bollinger.Multiplier, "파일에 없는 항목은 유지")
	assert.Equal(t, "close", cfg.Bollinger.Source)
}

func TestApplySettings(t *testing.T) {
	base := BollingerInputs{Length: 20, MAType: "SMA", Source: "close", Multiplier: 2}

	t.Run("일부 덮어쓰기", func(t *testing.T) {
		in := base
		require.NoError(t, ApplySettings([]byte("bollinger:\n  source: open\n  maType: EMA\n"), &in))
		assert.Equal(t, "open", in.Source)
		assert.Equal(t, "EMA", in.MAType)
		assert.Equal(t, 20, in.Length)
	})

	t.Run("bollinger 항목 없음", func(t *testing.T) {
		in := base
		require.NoError(t, ApplySettings([]byte("other: 1\n"), &in))
		assert.Equal(t, base, in)
	})

	t.Run("잘못된 YAML", func(t *testing.T) {
		in := base
		assert.Error(t, ApplySettings([]byte("bollinger: [\n"), &in))
		assert.Equal(t, base, in)
	})

	t.Run("직렬화 후 적용", func(t *testing.T) {
		want := BollingerInputs{Length: 9, MAType: "EMA", Source: "high", Multiplier: 1.25, Offset: -1}
		data, err := MarshalSettings(want)
		require.NoError(t, err)

		in := base
		require.NoError(t, ApplySettings(data, &in))
		assert.Equal(t, want, in)
	})
}
