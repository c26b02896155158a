package indicator

// Shift는 시리즈를 offset만큼 이동합니다. 길이는 항상 유지됩니다.
// offset > 0이면 앞쪽이, offset < 0이면 뒤쪽이 NaN으로 채워집니다
func Shift(values []float64, offset int) []float64 {
	if offset == 0 {
		return values
	}

	n := len(values)
	out := absentSeries(n)
	for i := range out {
		if j := i - offset; j >= 0 && j < n {
			out[i] = values[j]
		}
	}
	return out
}
