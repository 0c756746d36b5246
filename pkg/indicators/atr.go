package indicators

import "math"

// TrueRange is the widest of the bar range and the gaps to the previous close
//
// Formula:
// TR = max(High - Low, |High - PrevClose|, |Low - PrevClose|)
func TrueRange(previousClose, high, low float64) float64 {
	return math.Max(high-low, math.Max(math.Abs(high-previousClose), math.Abs(low-previousClose)))
}

// TrueRangeBulk applies TrueRange element-wise; previousClose[i] is the
// close of the bar before high[i] / low[i]
func TrueRangeBulk(previousClose, high, low []float64) ([]float64, error) {
	if err := requireWindow("true range", len(high)); err != nil {
		return nil, err
	}
	if err := requireSameLength("true range", previousClose, high, low); err != nil {
		return nil, err
	}

	out := make([]float64, len(high))
	for i := range high {
		out[i] = TrueRange(previousClose[i], high[i], low[i])
	}
	return out, nil
}

// AverageTrueRange averages the true ranges inside one window
//
// The first bar of the window has no previous close, so its range is
// High - Low; later bars use the close before them.
func AverageTrueRange(close, high, low []float64, kind MovingAverageKind) (float64, error) {
	if err := requireWindow("average true range", len(close)); err != nil {
		return 0, err
	}
	if err := requireSameLength("average true range", close, high, low); err != nil {
		return 0, err
	}
	return MovingAverage(windowTrueRanges(close, high, low), kind)
}

// AverageTrueRangeBulk applies AverageTrueRange to every window of length period
func AverageTrueRangeBulk(close, high, low []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requireSameLength("average true range", close, high, low); err != nil {
		return nil, err
	}
	if err := requirePeriod("average true range", len(close), period); err != nil {
		return nil, err
	}
	return rolling(len(close), period, func(i int) (float64, error) {
		j := i + period
		return AverageTrueRange(close[i:j], high[i:j], low[i:j], kind)
	})
}

func windowTrueRanges(close, high, low []float64) []float64 {
	tr := make([]float64, len(close))
	tr[0] = high[0] - low[0]
	for i := 1; i < len(close); i++ {
		tr[i] = TrueRange(close[i-1], high[i], low[i])
	}
	return tr
}
