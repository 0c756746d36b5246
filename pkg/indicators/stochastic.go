package indicators

import (
	"fmt"

	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// StochasticOscillator locates the newest price inside the window range
//
// Formula:
// %K = 100 × (Close - Lowest) / (Highest - Lowest)
//
// Range: 0 to 100. A flat window reads 50.
func StochasticOscillator(prices []float64) (float64, error) {
	if err := requireWindow("stochastic oscillator", len(prices)); err != nil {
		return 0, err
	}

	lowest := stats.Min(prices)
	highest := stats.Max(prices)
	if highest == lowest {
		return 50, nil
	}
	return 100 * (prices[len(prices)-1] - lowest) / (highest - lowest), nil
}

// StochasticOscillatorBulk applies StochasticOscillator to every window of length period
func StochasticOscillatorBulk(prices []float64, period int) ([]float64, error) {
	if err := requirePeriod("stochastic oscillator", len(prices), period); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (float64, error) {
		return StochasticOscillator(prices[i : i+period])
	})
}

// SlowStochastic smooths stochastic oscillator outputs (%D)
func SlowStochastic(stochastics []float64, kind MovingAverageKind) (float64, error) {
	v, err := MovingAverage(stochastics, kind)
	if err != nil {
		return 0, fmt.Errorf("slow stochastic: %w", err)
	}
	return v, nil
}

// SlowStochasticBulk applies SlowStochastic to every window of length period
func SlowStochasticBulk(stochastics []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requirePeriod("slow stochastic", len(stochastics), period); err != nil {
		return nil, err
	}
	return rolling(len(stochastics), period, func(i int) (float64, error) {
		return SlowStochastic(stochastics[i:i+period], kind)
	})
}

// SlowestStochastic smooths slow stochastic outputs once more
func SlowestStochastic(slowStochastics []float64, kind MovingAverageKind) (float64, error) {
	v, err := MovingAverage(slowStochastics, kind)
	if err != nil {
		return 0, fmt.Errorf("slowest stochastic: %w", err)
	}
	return v, nil
}

// SlowestStochasticBulk applies SlowestStochastic to every window of length period
func SlowestStochasticBulk(slowStochastics []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requirePeriod("slowest stochastic", len(slowStochastics), period); err != nil {
		return nil, err
	}
	return rolling(len(slowStochastics), period, func(i int) (float64, error) {
		return SlowestStochastic(slowStochastics[i:i+period], kind)
	})
}
