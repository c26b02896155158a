package market

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RawRecord는 정규화 전의 원본 캔들 레코드입니다
type RawRecord map[string]interface{}

// ValidationError는 입력값 검증 에러를 정의합니다
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("유효하지 않은 %s: %v", e.Field, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Get은 대소문자를 구분하지 않고 필드 값을 찾습니다
func (r RawRecord) Get(key string) (interface{}, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(strings.TrimSpace(k), key) {
			return v, true
		}
	}
	return nil, false
}

// DecodeRecords는 JSON 배열을 원본 레코드 목록으로 읽습니다
func DecodeRecords(r io.Reader) ([]RawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("JSON 배열 디코딩 실패: %w", err)
	}

	records := make([]RawRecord, 0, len(items))
	for i, item := range items {
		var rec RawRecord
		inner := json.NewDecoder(bytes.NewReader(item))
		inner.UseNumber()
		if err := inner.Decode(&rec); err != nil || rec == nil {
			return nil, &ValidationError{
				Field: fmt.Sprintf("records[%d]", i),
				Err:   fmt.Errorf("객체가 아닙니다: %s", truncate(string(item), 32)),
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
