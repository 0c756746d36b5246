package indicators

import (
	"fmt"

	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// MovingAverage averages one window with the selected kind
//
// Formula (smoothed / exponential):
// MA = Σ p_k × (1-α)^k / Σ (1-α)^k, k = 0 for the newest price
// - smoothed:    α = 1 / n
// - exponential: α = 2 / (n + 1)
//
// Properties:
// - Linear in scale: MA(c × window) = c × MA(window)
// - Median and mode ignore ordering inside the window
func MovingAverage(window []float64, kind MovingAverageKind) (float64, error) {
	if err := requireWindow("moving average", len(window)); err != nil {
		return 0, err
	}

	switch kind {
	case MASimple:
		return stats.Mean(window), nil
	case MASmoothed:
		return weightedAverage(window, 1, 0), nil
	case MAExponential:
		return weightedAverage(window, 2, 1), nil
	case MAMedian:
		return stats.Median(window), nil
	case MAMode:
		return stats.Mode(window), nil
	}
	return 0, fmt.Errorf("%w: unknown moving average kind %d", ErrInvalidInput, int(kind))
}

// MovingAverageBulk applies MovingAverage to every window of length period
func MovingAverageBulk(series []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requirePeriod("moving average", len(series), period); err != nil {
		return nil, err
	}
	return rolling(len(series), period, func(i int) (float64, error) {
		return MovingAverage(series[i:i+period], kind)
	})
}

// weightedAverage uses α = alphaNum / (n + alphaDen)
func weightedAverage(window []float64, alphaNum, alphaDen float64) float64 {
	alpha := alphaNum / (float64(len(window)) + alphaDen)
	decay := 1 - alpha

	var num, den float64
	weight := 1.0
	for i := len(window) - 1; i >= 0; i-- {
		num += window[i] * weight
		den += weight
		weight *= decay
	}
	return num / den
}
