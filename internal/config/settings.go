package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// settingsFile은 YAML 설정 파일의 구조입니다
//
//	bollinger:
//	  length: 20
//	  maType: SMA
//	  source: close
//	  multiplier: 2
//	  offset: 0
type settingsFile struct {
	Bollinger *BollingerInputs `yaml:"bollinger"`
}

// ApplySettingsFile은 YAML 파일에 있는 항목만 inputs에 덮어씁니다
func ApplySettingsFile(path string, inputs *BollingerInputs) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	return ApplySettings(data, inputs)
}

// ApplySettings는 YAML 데이터에 있는 항목만 inputs에 덮어씁니다
func ApplySettings(data []byte, inputs *BollingerInputs) error {
	merged := *inputs
	sf := settingsFile{Bollinger: &merged}
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}

	if sf.Bollinger != nil {
		*inputs = *sf.Bollinger
	}
	return nil
}

// MarshalSettings는 입력 설정을 YAML로 직렬화합니다
func MarshalSettings(inputs BollingerInputs) ([]byte, error) {
	return yaml.Marshal(settingsFile{Bollinger: &inputs})
}
