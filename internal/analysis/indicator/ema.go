package indicator

import "math"

// EMA는 지수이동평균을 계산합니다.
// 첫 값은 첫 구간의 SMA로 시작하며, 값이 유한하지 않게 되면
// 다음 구간의 SMA로 다시 시작합니다
func EMA(values []float64, length int) []float64 {
	out := absentSeries(len(values))
	if length <= 0 || length > len(values) {
		return out
	}

	// EMA 계산을 위한 승수 계산
	multiplier := 2.0 / float64(length+1)

	prev := math.NaN()
	for i := length - 1; i < len(values); i++ {
		if isAbsent(prev) {
			prev = windowMean(values[i-length+1 : i+1])
			out[i] = prev
			continue
		}

		// EMA = 이전 EMA + (현재가 - 이전 EMA) × 승수
		prev = (values[i]-prev)*multiplier + prev
		out[i] = prev
	}
	return out
}
