package domain

// Candle은 캔들 데이터를 표현합니다
type Candle struct {
	Timestamp int64   `json:"timestamp"` // 캔들 시작 시간 (epoch millis)
	Open      float64 `json:"open"`      // 시가
	High      float64 `json:"high"`      // 고가
	Low       float64 `json:"low"`       // 저가
	Close     float64 `json:"close"`     // 종가
	Volume    float64 `json:"volume"`    // 거래량
}

// CandleList는 캔들 데이터 목록입니다
type CandleList []Candle

// IsOrdered는 타임스탬프가 감소하지 않는지 확인합니다
func (cl CandleList) IsOrdered() bool {
	for i := 1; i < len(cl); i++ {
		if cl[i].Timestamp < cl[i-1].Timestamp {
			return false
		}
	}
	return true
}
