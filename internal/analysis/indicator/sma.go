package indicator

import "math"

// SMA는 단순이동평균을 계산합니다.
// i < length-1 구간과 length가 범위를 벗어난 경우 NaN을 반환합니다
func SMA(values []float64, length int) []float64 {
	out := absentSeries(len(values))
	if length <= 0 || length > len(values) {
		return out
	}

	for i := length - 1; i < len(values); i++ {
		out[i] = windowMean(values[i-length+1 : i+1])
	}
	return out
}

// StdDev는 이동 모표준편차를 계산합니다 (분모 = length)
func StdDev(values []float64, length int) []float64 {
	out := absentSeries(len(values))
	if length <= 0 || length > len(values) {
		return out
	}

	for i := length - 1; i < len(values); i++ {
		window := values[i-length+1 : i+1]
		mean := windowMean(window)

		var sumSq float64
		for _, v := range window {
			d := v - mean
			sumSq += d * d
		}
		out[i] = math.Sqrt(sumSq / float64(length))
	}
	return out
}

// 합산은 인덱스 순서대로 합니다
func windowMean(window []float64) float64 {
	var sum float64
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}
