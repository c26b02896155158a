package market

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/assist-by/bollinger/internal/domain"
)

// 이 값보다 작은 타임스탬프는 초 단위로 간주합니다
const secondsThreshold = 10_000_000_000

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Normalizer는 원본 레코드를 캔들 시리즈로 변환합니다
type Normalizer struct {
	now func() time.Time
}

// NormalizerOption은 Normalizer 생성 옵션을 정의합니다
type NormalizerOption func(*Normalizer)

// WithClock은 타임스탬프가 없는 레코드에 사용할 기준 시각을 설정합니다
func WithClock(now func() time.Time) NormalizerOption {
	return func(n *Normalizer) {
		n.now = now
	}
}

// NewNormalizer는 새로운 Normalizer를 생성합니다
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize는 레코드 순서를 유지한 채 캔들 목록을 만듭니다.
// 가격 필드가 없거나 숫자가 아니면 NaN, 거래량이 없으면 0이 됩니다.
// 시간 정보가 없는 레코드는 기준 시각 + 인덱스(ms)를 사용합니다
func (n *Normalizer) Normalize(raw []RawRecord) domain.CandleList {
	base := n.now().UnixMilli()

	candles := make(domain.CandleList, len(raw))
	for i, rec := range raw {
		candles[i] = domain.Candle{
			Timestamp: timestamp(rec, base+int64(i)),
			Open:      field(rec, "open"),
			High:      field(rec, "high"),
			Low:       field(rec, "low"),
			Close:     field(rec, "close"),
			Volume:    volume(rec),
		}
	}
	return candles
}

func timestamp(rec RawRecord, fallback int64) int64 {
	if v, ok := rec.Get("timestamp"); ok {
		if ts := toNumber(v); ts != 0 && !math.IsNaN(ts) && !math.IsInf(ts, 0) {
			if ts < secondsThreshold {
				ts *= 1000
			}
			if inMillisRange(ts) {
				return int64(ts)
			}
		}
	}

	if v, ok := rec.Get("date"); ok {
		if s, ok := v.(string); ok {
			if t, ok := parseDate(s); ok {
				return t.UnixMilli()
			}
		}
	}

	return fallback
}

// int64로 표현할 수 없는 값은 타임스탬프가 없는 것으로 봅니다
func inMillisRange(ts float64) bool {
	return ts >= math.MinInt64 && ts < math.MaxInt64
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func field(rec RawRecord, key string) float64 {
	v, ok := rec.Get(key)
	if !ok {
		return math.NaN()
	}
	return toNumber(v)
}

func volume(rec RawRecord) float64 {
	v, ok := rec.Get("volume")
	if !ok || v == nil {
		return 0
	}
	return toNumber(v)
}

func toNumber(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
