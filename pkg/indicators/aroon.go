package indicators

import (
	"fmt"

	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// Aroon identifies trend strength and direction by measuring the time
// elapsed since the highest high and lowest low of the window
//
// Formula (n = window length):
// Aroon Up   = 100 × (n - bars since highest high) / n
// Aroon Down = 100 × (n - bars since lowest low) / n
// Aroon Oscillator = Aroon Up - Aroon Down
//
// The most recent extreme wins ties.
//
// Range: 0 to 100 (Up/Down), -100 to +100 (Oscillator)
// - Aroon Up > 70: Strong uptrend
// - Aroon Down > 70: Strong downtrend
type Aroon struct {
	Up         float64
	Down       float64
	Oscillator float64
}

// AroonUp measures how recently the window made its high
func AroonUp(highs []float64) (float64, error) {
	if err := requireWindow("aroon up", len(highs)); err != nil {
		return 0, err
	}
	return aroonScore(len(highs), stats.ArgMax(highs)), nil
}

// AroonDown measures how recently the window made its low
func AroonDown(lows []float64) (float64, error) {
	if err := requireWindow("aroon down", len(lows)); err != nil {
		return 0, err
	}
	return aroonScore(len(lows), stats.ArgMin(lows)), nil
}

// AroonOscillator is Aroon Up minus Aroon Down
func AroonOscillator(up, down float64) float64 {
	return up - down
}

// AroonIndicator returns Up, Down and Oscillator for one window
func AroonIndicator(highs, lows []float64) (Aroon, error) {
	if err := requireSameLength("aroon", highs, lows); err != nil {
		return Aroon{}, err
	}
	up, err := AroonUp(highs)
	if err != nil {
		return Aroon{}, err
	}
	down, err := AroonDown(lows)
	if err != nil {
		return Aroon{}, err
	}
	return Aroon{Up: up, Down: down, Oscillator: AroonOscillator(up, down)}, nil
}

// AroonUpBulk applies AroonUp to every window of length period
func AroonUpBulk(highs []float64, period int) ([]float64, error) {
	if err := requirePeriod("aroon up", len(highs), period); err != nil {
		return nil, err
	}
	return rolling(len(highs), period, func(i int) (float64, error) {
		return AroonUp(highs[i : i+period])
	})
}

// AroonDownBulk applies AroonDown to every window of length period
func AroonDownBulk(lows []float64, period int) ([]float64, error) {
	if err := requirePeriod("aroon down", len(lows), period); err != nil {
		return nil, err
	}
	return rolling(len(lows), period, func(i int) (float64, error) {
		return AroonDown(lows[i : i+period])
	})
}

// AroonOscillatorBulk subtracts aligned Aroon Down values from Aroon Up values
func AroonOscillatorBulk(ups, downs []float64) ([]float64, error) {
	if err := requireWindow("aroon oscillator", len(ups)); err != nil {
		return nil, err
	}
	if err := requireSameLength("aroon oscillator", ups, downs); err != nil {
		return nil, err
	}

	out := make([]float64, len(ups))
	for i := range ups {
		out[i] = AroonOscillator(ups[i], downs[i])
	}
	return out, nil
}

// AroonIndicatorBulk applies AroonIndicator to every window of length period
func AroonIndicatorBulk(highs, lows []float64, period int) ([]Aroon, error) {
	if err := requireSameLength("aroon", highs, lows); err != nil {
		return nil, err
	}
	if err := requirePeriod("aroon", len(highs), period); err != nil {
		return nil, err
	}
	return rolling(len(highs), period, func(i int) (Aroon, error) {
		v, err := AroonIndicator(highs[i:i+period], lows[i:i+period])
		if err != nil {
			return Aroon{}, fmt.Errorf("aroon window %d: %w", i, err)
		}
		return v, nil
	})
}

func aroonScore(n, extremeIdx int) float64 {
	since := n - 1 - extremeIdx
	return 100 * float64(n-since) / float64(n)
}
