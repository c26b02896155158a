package indicator

import (
	"math"

	"github.com/assist-by/bollinger/internal/domain"
)

// PriceData는 지표 계산에 필요한 가격 정보를 정의합니다
type PriceData struct {
	Timestamp int64   // 타임스탬프 (epoch millis)
	Open      float64 // 시가
	High      float64 // 고가
	Low       float64 // 저가
	Close     float64 // 종가
	Volume    float64 // 거래량
}

// BandPoint는 한 캔들에 대응하는 볼린저 밴드 값입니다.
// 값이 없는 구간은 nil이며 0과 구분됩니다
type BandPoint struct {
	Timestamp int64    `json:"timestamp"`
	Basis     *float64 `json:"basis"`
	Upper     *float64 `json:"upper"`
	Lower     *float64 `json:"lower"`
}

// HasValue는 세 밴드 값이 모두 존재하는지 확인합니다
func (p BandPoint) HasValue() bool {
	return p.Basis != nil && p.Upper != nil && p.Lower != nil
}

// ConvertCandlesToPriceData는 캔들 데이터를 지표 계산용 PriceData로 변환합니다
func ConvertCandlesToPriceData(candles domain.CandleList) []PriceData {
	priceData := make([]PriceData, len(candles))
	for i, candle := range candles {
		priceData[i] = PriceData{
			Timestamp: candle.Timestamp,
			Open:      candle.Open,
			High:      candle.High,
			Low:       candle.Low,
			Close:     candle.Close,
			Volume:    candle.Volume,
		}
	}
	return priceData
}

// 내부 계산에서는 NaN으로 빈 값을 표시합니다
func absentSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func isAbsent(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func present(v float64) *float64 {
	if isAbsent(v) {
		return nil
	}
	return &v
}
