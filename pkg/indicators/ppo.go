package indicators

import "fmt"

// PercentagePriceOscillator is the MACD expressed as a percentage of the long average
//
// Formula:
// PPO = 100 × (MA(last shortPeriod prices) - MA(window)) / MA(window)
func PercentagePriceOscillator(prices []float64, shortPeriod int, kind MovingAverageKind) (float64, error) {
	if err := requirePeriod("percentage price oscillator short period", len(prices), shortPeriod); err != nil {
		return 0, err
	}

	short, err := MovingAverage(prices[len(prices)-shortPeriod:], kind)
	if err != nil {
		return 0, fmt.Errorf("percentage price oscillator: %w", err)
	}
	long, err := MovingAverage(prices, kind)
	if err != nil {
		return 0, fmt.Errorf("percentage price oscillator: %w", err)
	}
	if long == 0 {
		return 0, fmt.Errorf("%w: percentage price oscillator with zero long average", ErrDivisionByZero)
	}
	return 100 * (short - long) / long, nil
}

// PercentagePriceOscillatorBulk applies PercentagePriceOscillator to every window of length longPeriod
func PercentagePriceOscillatorBulk(prices []float64, shortPeriod, longPeriod int, kind MovingAverageKind) ([]float64, error) {
	if err := requirePeriod("percentage price oscillator", len(prices), longPeriod); err != nil {
		return nil, err
	}
	if err := requireShortPeriod("percentage price oscillator", shortPeriod, longPeriod); err != nil {
		return nil, err
	}
	return rolling(len(prices), longPeriod, func(i int) (float64, error) {
		return PercentagePriceOscillator(prices[i:i+longPeriod], shortPeriod, kind)
	})
}
