package indicators

import "github.com/yourusername/quantlink-ti/pkg/stats"

// WilliamsPercentR measures where the close sits below the highest high of the window
//
// Formula:
// %R = -100 × (Highest High - Close) / (Highest High - Lowest Low)
//
// Range: -100 to 0. A window with no range reads -50.
// - Above -20: Overbought
// - Below -80: Oversold
func WilliamsPercentR(high, low []float64, close float64) (float64, error) {
	if err := requireWindow("williams %r", len(high)); err != nil {
		return 0, err
	}
	if err := requireSameLength("williams %r", high, low); err != nil {
		return 0, err
	}

	highest := stats.Max(high)
	lowest := stats.Min(low)
	if highest == lowest {
		return -50, nil
	}
	return -100 * (highest - close) / (highest - lowest), nil
}

// WilliamsPercentRBulk evaluates each window against the close of its last bar
func WilliamsPercentRBulk(high, low, close []float64, period int) ([]float64, error) {
	if err := requireSameLength("williams %r", high, low, close); err != nil {
		return nil, err
	}
	if err := requirePeriod("williams %r", len(high), period); err != nil {
		return nil, err
	}
	return rolling(len(high), period, func(i int) (float64, error) {
		j := i + period
		return WilliamsPercentR(high[i:j], low[i:j], close[j-1])
	})
}
