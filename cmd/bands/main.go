package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/assist-by/bollinger/internal/config"
	"github.com/assist-by/bollinger/internal/logger"
	"github.com/assist-by/bollinger/internal/market"
	"github.com/assist-by/bollinger/internal/overlay"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "실행 실패: %v\n", err)
		os.Exit(1)
	}
}

// run은 원본 레코드를 읽어 볼린저 밴드를 계산하고 결과를 출력합니다
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// 명령줄 플래그 정의 (지정한 값만 설정을 덮어씀)
	fs := flag.NewFlagSet("bands", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataFile := fs.String("file", cfg.App.DataFile, "원본 레코드 JSON 파일 (비우거나 -이면 표준입력)")
	length := fs.Int("length", cfg.Bollinger.Length, "기간")
	source := fs.String("source", cfg.Bollinger.Source, "가격 필드 (open, high, low, close)")
	maType := fs.String("ma", cfg.Bollinger.MAType, "기준선 이동평균 유형 (SMA, EMA)")
	multiplier := fs.Float64("mult", cfg.Bollinger.Multiplier, "표준편차 승수")
	offset := fs.Int("offset", cfg.Bollinger.Offset, "이동 칸 수")
	format := fs.String("format", cfg.App.OutputFormat, "출력 형식 (json, ndjson)")
	printSettings := fs.Bool("print-settings", false, "적용될 볼린저 설정을 YAML로 출력 후 종료")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.App.DataFile = *dataFile
	cfg.App.OutputFormat = *format
	cfg.Bollinger = config.BollingerInputs{
		Length:     *length,
		MAType:     *maType,
		Source:     *source,
		Multiplier: *multiplier,
		Offset:     *offset,
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("설정값 검증 실패: %w", err)
	}

	// SETTINGS_FILE로 다시 쓸 수 있는 형식으로 출력
	if *printSettings {
		data, err := config.MarshalSettings(cfg.Bollinger)
		if err != nil {
			return fmt.Errorf("설정 직렬화 실패: %w", err)
		}
		_, err = stdout.Write(data)
		return err
	}

	// 로그 설정
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		return err
	}

	// 데이터 로드
	records, err := readRecords(cfg.App.DataFile, stdin)
	if err != nil {
		return err
	}
	candles := market.NewNormalizer().Normalize(records)

	opt := cfg.Bollinger.Option()
	log.WithFields(logrus.Fields{
		"records":   len(records),
		"indicator": opt.Name(),
	}).Info("볼린저 밴드 계산 시작")

	bb := overlay.New("BB", candles, opt, log)

	if err := writeRows(stdout, cfg.App.OutputFormat, bb.Rows()); err != nil {
		return fmt.Errorf("결과 출력 실패: %w", err)
	}

	log.Info("볼린저 밴드 계산 완료")
	return nil
}

func readRecords(path string, stdin io.Reader) ([]market.RawRecord, error) {
	if path == "" || path == "-" {
		return market.DecodeRecords(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("데이터 파일 열기 실패: %w", err)
	}
	defer f.Close()

	return market.DecodeRecords(f)
}

func writeRows(w io.Writer, format string, rows []overlay.Row) error {
	enc := json.NewEncoder(w)
	if format != config.OutputNDJSON {
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
