package indicators

import (
	"fmt"
	"math"
)

// TrueStrengthIndex is a double-smoothed momentum oscillator
//
// Formula:
// M   = P_t - P_{t-1}
// DS(x) = MA(MA_bulk(x, firstPeriod, firstKind), secondKind)
// TSI = 100 × DS(M) / DS(|M|)
//
// The window must hold firstPeriod + 1 prices at least; the second
// smoothing averages every first-smoothed value of the window. The classic
// setup is 25 / 13 exponential.
//
// Range: -100 to +100
func TrueStrengthIndex(prices []float64, firstPeriod int, firstKind, secondKind MovingAverageKind) (float64, error) {
	if firstPeriod < 1 {
		return 0, fmt.Errorf("%w: true strength index: period must be positive, got %d", ErrInvalidInput, firstPeriod)
	}
	if err := requirePeriod("true strength index", len(prices), firstPeriod+1); err != nil {
		return 0, err
	}

	momentum := make([]float64, len(prices)-1)
	absMomentum := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		momentum[i-1] = prices[i] - prices[i-1]
		absMomentum[i-1] = math.Abs(momentum[i-1])
	}

	num, err := doubleSmooth(momentum, firstPeriod, firstKind, secondKind)
	if err != nil {
		return 0, err
	}
	den, err := doubleSmooth(absMomentum, firstPeriod, firstKind, secondKind)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, fmt.Errorf("%w: true strength index without price movement", ErrDivisionByZero)
	}
	return 100 * num / den, nil
}

// TrueStrengthIndexBulk applies TrueStrengthIndex to every window of
// firstPeriod + secondPeriod prices, so the second smoothing sees
// secondPeriod values
func TrueStrengthIndexBulk(prices []float64, firstKind MovingAverageKind, firstPeriod int, secondKind MovingAverageKind, secondPeriod int) ([]float64, error) {
	if firstPeriod < 1 || secondPeriod < 1 {
		return nil, fmt.Errorf("%w: true strength index periods %d/%d", ErrInvalidInput, firstPeriod, secondPeriod)
	}
	period := firstPeriod + secondPeriod
	if err := requirePeriod("true strength index", len(prices), period); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (float64, error) {
		return TrueStrengthIndex(prices[i:i+period], firstPeriod, firstKind, secondKind)
	})
}

func doubleSmooth(values []float64, firstPeriod int, firstKind, secondKind MovingAverageKind) (float64, error) {
	first, err := MovingAverageBulk(values, firstKind, firstPeriod)
	if err != nil {
		return 0, fmt.Errorf("true strength index: %w", err)
	}
	second, err := MovingAverage(first, secondKind)
	if err != nil {
		return 0, fmt.Errorf("true strength index: %w", err)
	}
	return second, nil
}
