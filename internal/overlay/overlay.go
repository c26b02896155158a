package overlay

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/assist-by/bollinger/internal/analysis/indicator"
	"github.com/assist-by/bollinger/internal/domain"
)

// Row는 캔들과 해당 캔들의 밴드 값을 함께 담습니다.
// 유한하지 않은 값은 nil입니다
type Row struct {
	Timestamp int64    `json:"timestamp"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    *float64 `json:"volume"`
	Basis     *float64 `json:"basis"`
	Upper     *float64 `json:"upper"`
	Lower     *float64 `json:"lower"`
}

// Overlay는 차트에 올라가는 볼린저 밴드 하나를 나타내는 핸들입니다.
// 데이터나 옵션이 바뀔 때마다 밴드를 다시 계산합니다
type Overlay struct {
	id     string
	logger logrus.FieldLogger

	mu      sync.RWMutex
	candles domain.CandleList
	opt     indicator.BollingerOption
	bands   []indicator.BandPoint
}

// New는 새로운 오버레이를 생성하고 밴드를 계산합니다
func New(id string, candles domain.CandleList, opt indicator.BollingerOption, logger logrus.FieldLogger) *Overlay {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	o := &Overlay{
		id:      id,
		logger:  logger.WithField("overlay", id),
		candles: copyCandles(candles),
		opt:     opt,
	}
	o.recompute()
	return o
}

// ID는 오버레이 식별자를 반환합니다
func (o *Overlay) ID() string {
	return o.id
}

// Name은 현재 옵션에 따른 지표 이름을 반환합니다
func (o *Overlay) Name() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.opt.Name()
}

// Options는 현재 옵션을 반환합니다
func (o *Overlay) Options() indicator.BollingerOption {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.opt
}

// Update는 옵션을 바꾸고 다시 계산한 밴드를 반환합니다
func (o *Overlay) Update(opt indicator.BollingerOption) []indicator.BandPoint {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.opt = opt
	o.recompute()
	return copyBands(o.bands)
}

// SetData는 캔들 데이터를 바꾸고 다시 계산한 밴드를 반환합니다
func (o *Overlay) SetData(candles domain.CandleList) []indicator.BandPoint {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.candles = copyCandles(candles)
	o.recompute()
	return copyBands(o.bands)
}

// Bands는 현재 밴드 값의 복사본을 반환합니다
func (o *Overlay) Bands() []indicator.BandPoint {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return copyBands(o.bands)
}

// Rows는 캔들마다 밴드 값을 붙여 반환합니다
func (o *Overlay) Rows() []Row {
	o.mu.RLock()
	defer o.mu.RUnlock()

	rows := make([]Row, len(o.candles))
	for i, c := range o.candles {
		b := o.bands[i]
		rows[i] = Row{
			Timestamp: c.Timestamp,
			Open:      finite(c.Open),
			High:      finite(c.High),
			Low:       finite(c.Low),
			Close:     finite(c.Close),
			Volume:    finite(c.Volume),
			Basis:     clone(b.Basis),
			Upper:     clone(b.Upper),
			Lower:     clone(b.Lower),
		}
	}
	return rows
}

// recompute는 mu를 잡은 상태에서 호출해야 합니다
func (o *Overlay) recompute() {
	o.bands = indicator.BollingerBands(indicator.ConvertCandlesToPriceData(o.candles), o.opt)

	if !o.candles.IsOrdered() {
		o.logger.Warn("캔들 타임스탬프가 정렬되어 있지 않습니다")
	}

	filled := 0
	for _, b := range o.bands {
		if b.HasValue() {
			filled++
		}
	}
	o.logger.WithFields(logrus.Fields{
		"indicator": o.opt.Name(),
		"candles":   len(o.candles),
		"filled":    filled,
	}).Debug("밴드 계산 완료")
}

func copyCandles(candles domain.CandleList) domain.CandleList {
	out := make(domain.CandleList, len(candles))
	copy(out, candles)
	return out
}

// 포인터 값까지 복사해 호출자가 내부 상태를 바꾸지 못하게 합니다
func copyBands(bands []indicator.BandPoint) []indicator.BandPoint {
	out := make([]indicator.BandPoint, len(bands))
	for i, b := range bands {
		out[i] = indicator.BandPoint{
			Timestamp: b.Timestamp,
			Basis:     clone(b.Basis),
			Upper:     clone(b.Upper),
			Lower:     clone(b.Lower),
		}
	}
	return out
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
