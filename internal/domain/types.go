package domain

import "strings"

// Source는 지표 계산에 사용할 가격 필드를 정의합니다
type Source string

const (
	SourceOpen  Source = "open"
	SourceHigh  Source = "high"
	SourceLow   Source = "low"
	SourceClose Source = "close"
)

// ParseSource는 문자열을 Source로 변환합니다.
// 알 수 없는 값은 에러 없이 SourceClose로 처리합니다
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceOpen:
		return SourceOpen
	case SourceHigh:
		return SourceHigh
	case SourceLow:
		return SourceLow
	default:
		return SourceClose
	}
}

// String은 Source의 문자열 표현을 반환합니다
func (s Source) String() string {
	return string(s)
}

// MAType은 기준선 이동평균 유형을 정의합니다
type MAType string

const (
	SMA MAType = "SMA" // 단순이동평균
	EMA MAType = "EMA" // 지수이동평균
)

// ParseMAType은 문자열을 MAType으로 변환합니다.
// 알 수 없는 값은 에러 없이 SMA로 처리합니다
func ParseMAType(s string) MAType {
	if MAType(strings.ToUpper(strings.TrimSpace(s))) == EMA {
		return EMA
	}
	return SMA
}

// String은 MAType의 문자열 표현을 반환합니다
func (m MAType) String() string {
	return string(m)
}
