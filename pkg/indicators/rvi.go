package indicators

import "fmt"

// RelativeVigorIndex compares the close-open move with the bar range
//
// Formula:
// Num_t = (CO_t + 2·CO_{t-1} + 2·CO_{t-2} + CO_{t-3}) / 6, CO = Close - Open
// Den_t = (HL_t + 2·HL_{t-1} + 2·HL_{t-2} + HL_{t-3}) / 6, HL = High - Low
// RVI   = MA(Num, kind) / MA(Den, kind)
//
// The window needs at least four bars.
func RelativeVigorIndex(open, high, low, close []float64, kind MovingAverageKind) (float64, error) {
	if err := requireSameLength("relative vigor index", open, high, low, close); err != nil {
		return 0, err
	}
	if err := requireMinLength("relative vigor index", len(close), 4); err != nil {
		return 0, err
	}

	n := len(close) - 3
	num := make([]float64, n)
	den := make([]float64, n)
	for i := 3; i < len(close); i++ {
		num[i-3] = symmetricWeight(close[i]-open[i], close[i-1]-open[i-1], close[i-2]-open[i-2], close[i-3]-open[i-3])
		den[i-3] = symmetricWeight(high[i]-low[i], high[i-1]-low[i-1], high[i-2]-low[i-2], high[i-3]-low[i-3])
	}

	numAvg, err := MovingAverage(num, kind)
	if err != nil {
		return 0, fmt.Errorf("relative vigor index: %w", err)
	}
	denAvg, err := MovingAverage(den, kind)
	if err != nil {
		return 0, fmt.Errorf("relative vigor index: %w", err)
	}
	if denAvg == 0 {
		return 0, fmt.Errorf("%w: relative vigor index with zero range", ErrDivisionByZero)
	}
	return numAvg / denAvg, nil
}

// RelativeVigorIndexBulk applies RelativeVigorIndex to every window of length period
func RelativeVigorIndexBulk(open, high, low, close []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requireSameLength("relative vigor index", open, high, low, close); err != nil {
		return nil, err
	}
	if err := requirePeriod("relative vigor index", len(close), period); err != nil {
		return nil, err
	}
	if err := requireMinLength("relative vigor index period", period, 4); err != nil {
		return nil, err
	}
	return rolling(len(close), period, func(i int) (float64, error) {
		j := i + period
		return RelativeVigorIndex(open[i:j], high[i:j], low[i:j], close[i:j], kind)
	})
}

func symmetricWeight(a, b, c, d float64) float64 {
	return (a + 2*b + 2*c + d) / 6
}
