package indicator

import "github.com/assist-by/bollinger/internal/domain"

// SelectSource는 각 캔들에서 계산에 사용할 가격 하나를 추출합니다.
// 알 수 없는 source는 종가를 사용합니다
func SelectSource(prices []PriceData, source domain.Source) []float64 {
	values := make([]float64, len(prices))
	for i, p := range prices {
		switch source {
		case domain.SourceOpen:
			values[i] = p.Open
		case domain.SourceHigh:
			values[i] = p.High
		case domain.SourceLow:
			values[i] = p.Low
		default:
			values[i] = p.Close
		}
	}
	return values
}
