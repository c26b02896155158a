package indicator

import (
	"fmt"

	"github.com/assist-by/bollinger/internal/domain"
)

// BollingerOption은 볼린저 밴드 계산에 필요한 옵션을 정의합니다
type BollingerOption struct {
	Length     int           // 기간
	Source     domain.Source // 가격 필드
	MAType     domain.MAType // 기준선 이동평균 유형
	Multiplier float64       // 표준편차 승수
	Offset     int           // 이동 칸 수 (음수 가능)
}

// DefaultBollingerOption은 기본 볼린저 밴드 옵션을 반환합니다
func DefaultBollingerOption() BollingerOption {
	return BollingerOption{
		Length:     20,
		Source:     domain.SourceClose,
		MAType:     domain.SMA,
		Multiplier: 2,
		Offset:     0,
	}
}

// Name은 옵션을 나타내는 지표 이름을 반환합니다
func (o BollingerOption) Name() string {
	return fmt.Sprintf("BB(%d,%s,%s,%g,%d)", o.Length, o.MAType, o.Source, o.Multiplier, o.Offset)
}

// Bands는 기준선과 상단/하단 밴드 시리즈입니다. 빈 값은 NaN입니다
type Bands struct {
	Basis []float64
	Upper []float64
	Lower []float64
}

// BollingerSeries는 값 시리즈에 대해 offset까지 적용된 밴드를 계산합니다
func BollingerSeries(values []float64, opt BollingerOption) Bands {
	var basis []float64
	switch opt.MAType {
	case domain.EMA:
		basis = EMA(values, opt.Length)
	default:
		basis = SMA(values, opt.Length)
	}
	dev := StdDev(values, opt.Length)

	upper := absentSeries(len(values))
	lower := absentSeries(len(values))
	for i, b := range basis {
		if isAbsent(b) || isAbsent(dev[i]) {
			continue
		}
		upper[i] = b + opt.Multiplier*dev[i]
		lower[i] = b - opt.Multiplier*dev[i]
	}

	return Bands{
		Basis: Shift(basis, opt.Offset),
		Upper: Shift(upper, opt.Offset),
		Lower: Shift(lower, opt.Offset),
	}
}

// BollingerBands는 가격 데이터에 대해 볼린저 밴드를 계산합니다.
// 결과는 입력과 같은 길이이며 에러를 반환하지 않습니다
func BollingerBands(prices []PriceData, opt BollingerOption) []BandPoint {
	bands := BollingerSeries(SelectSource(prices, opt.Source), opt)

	results := make([]BandPoint, len(prices))
	for i, p := range prices {
		results[i] = BandPoint{
			Timestamp: p.Timestamp,
			Basis:     present(bands.Basis[i]),
			Upper:     present(bands.Upper[i]),
			Lower:     present(bands.Lower[i]),
		}
	}
	return results
}
