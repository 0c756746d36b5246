package indicators

import "fmt"

// KeltnerChannel places bands a multiple of the average true range around
// a moving average of the close.
//
// Components:
// - Middle: MA(close, maKind)
// - Upper:  Middle + multiplier × ATR(window, atrKind)
// - Lower:  Middle - multiplier × ATR(window, atrKind)
//
// Properties:
// - Similar to Bollinger Bands but uses ATR instead of a deviation
// - Less sensitive to single-bar price spikes
func KeltnerChannel(high, low, close []float64, maKind, atrKind MovingAverageKind, multiplier float64) (Band, error) {
	if err := requireWindow("keltner channel", len(close)); err != nil {
		return Band{}, err
	}
	if err := requireSameLength("keltner channel", high, low, close); err != nil {
		return Band{}, err
	}

	middle, err := MovingAverage(close, maKind)
	if err != nil {
		return Band{}, fmt.Errorf("keltner channel: %w", err)
	}
	atr, err := AverageTrueRange(close, high, low, atrKind)
	if err != nil {
		return Band{}, fmt.Errorf("keltner channel: %w", err)
	}
	return band(middle, multiplier*atr), nil
}

// KeltnerChannelBulk applies KeltnerChannel to every window of length period
func KeltnerChannelBulk(high, low, close []float64, maKind, atrKind MovingAverageKind, multiplier float64, period int) ([]Band, error) {
	if err := requireSameLength("keltner channel", high, low, close); err != nil {
		return nil, err
	}
	if err := requirePeriod("keltner channel", len(close), period); err != nil {
		return nil, err
	}
	return rolling(len(close), period, func(i int) (Band, error) {
		j := i + period
		return KeltnerChannel(high[i:j], low[i:j], close[i:j], maKind, atrKind, multiplier)
	})
}
