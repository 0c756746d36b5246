package indicators

import (
	"fmt"
	"math"

	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// Deviation measures the dispersion of one window
//
// Kinds:
// - standard: population standard deviation
// - mean:     mean |x - mean|
// - median:   median |x - median|
// - mode:     mean |x - mode|
// - ulcer:    sqrt(mean(dd²)), dd = 100 × (x - running max) / running max
//
// The result is never negative.
func Deviation(window []float64, kind DeviationKind) (float64, error) {
	if err := requireWindow("deviation", len(window)); err != nil {
		return 0, err
	}

	switch kind {
	case DevStandard:
		return stats.StdDev(window), nil
	case DevMean:
		return stats.AbsoluteDeviation(window, stats.Mean(window)), nil
	case DevMedian:
		return stats.MedianAbsoluteDeviation(window, stats.Median(window)), nil
	case DevMode:
		return stats.AbsoluteDeviation(window, stats.Mode(window)), nil
	case DevUlcer:
		return ulcer(window)
	}
	return 0, fmt.Errorf("%w: unknown deviation kind %d", ErrInvalidInput, int(kind))
}

// DeviationBulk applies Deviation to every window of length period
func DeviationBulk(series []float64, kind DeviationKind, period int) ([]float64, error) {
	if err := requirePeriod("deviation", len(series), period); err != nil {
		return nil, err
	}
	return rolling(len(series), period, func(i int) (float64, error) {
		return Deviation(series[i:i+period], kind)
	})
}

func ulcer(window []float64) (float64, error) {
	runMax := window[0]
	var sumSq float64
	for _, v := range window {
		if v > runMax {
			runMax = v
		}
		if runMax == 0 {
			return 0, fmt.Errorf("%w: ulcer index with zero running maximum", ErrDivisionByZero)
		}
		dd := 100 * (v - runMax) / runMax
		sumSq += dd * dd
	}
	return math.Sqrt(sumSq / float64(len(window))), nil
}
