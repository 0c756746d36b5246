package indicators

import "fmt"

// MACDLine (Moving Average Convergence Divergence) is the spread between a
// short and a long average of the same window
//
// Formula:
// MACD = MA(last shortPeriod prices, shortKind) - MA(window, longKind)
//
// The window length is the long period; the classic setup is 12 / 26
// exponential with a 9 period exponential signal line.
func MACDLine(prices []float64, shortPeriod int, shortKind, longKind MovingAverageKind) (float64, error) {
	if err := requirePeriod("macd short period", len(prices), shortPeriod); err != nil {
		return 0, err
	}

	short, err := MovingAverage(prices[len(prices)-shortPeriod:], shortKind)
	if err != nil {
		return 0, fmt.Errorf("macd: %w", err)
	}
	long, err := MovingAverage(prices, longKind)
	if err != nil {
		return 0, fmt.Errorf("macd: %w", err)
	}
	return short - long, nil
}

// MACDLineBulk applies MACDLine to every window of length longPeriod
func MACDLineBulk(prices []float64, shortPeriod int, shortKind MovingAverageKind, longPeriod int, longKind MovingAverageKind) ([]float64, error) {
	if err := requirePeriod("macd", len(prices), longPeriod); err != nil {
		return nil, err
	}
	if err := requireShortPeriod("macd", shortPeriod, longPeriod); err != nil {
		return nil, err
	}
	return rolling(len(prices), longPeriod, func(i int) (float64, error) {
		return MACDLine(prices[i:i+longPeriod], shortPeriod, shortKind, longKind)
	})
}

// SignalLine averages MACD line values
func SignalLine(macds []float64, kind MovingAverageKind) (float64, error) {
	v, err := MovingAverage(macds, kind)
	if err != nil {
		return 0, fmt.Errorf("signal line: %w", err)
	}
	return v, nil
}

// SignalLineBulk applies SignalLine to every window of length period
func SignalLineBulk(macds []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requirePeriod("signal line", len(macds), period); err != nil {
		return nil, err
	}
	return rolling(len(macds), period, func(i int) (float64, error) {
		return SignalLine(macds[i:i+period], kind)
	})
}

// McGinleyMACD is a MACD line built from two McGinley dynamics
type McGinleyMACD struct {
	MACD          float64
	ShortMcGinley float64
	LongMcGinley  float64
}

// McGinleyDynamicMACDLine uses McGinley dynamics of the newest price with
// shortPeriod and the window length as periods. The returned short and long
// values seed the next window.
func McGinleyDynamicMACDLine(prices []float64, shortPeriod int, previousShort, previousLong float64) (McGinleyMACD, error) {
	if err := requirePeriod("mcginley dynamic macd short period", len(prices), shortPeriod); err != nil {
		return McGinleyMACD{}, err
	}

	latest := prices[len(prices)-1]
	short, err := McGinleyDynamic(latest, previousShort, shortPeriod)
	if err != nil {
		return McGinleyMACD{}, err
	}
	long, err := McGinleyDynamic(latest, previousLong, len(prices))
	if err != nil {
		return McGinleyMACD{}, err
	}
	return McGinleyMACD{MACD: short - long, ShortMcGinley: short, LongMcGinley: long}, nil
}

// McGinleyDynamicMACDLineBulk carries both McGinley values across windows of length longPeriod
func McGinleyDynamicMACDLineBulk(prices []float64, shortPeriod int, previousShort float64, longPeriod int, previousLong float64) ([]McGinleyMACD, error) {
	if err := requirePeriod("mcginley dynamic macd", len(prices), longPeriod); err != nil {
		return nil, err
	}
	if err := requireShortPeriod("mcginley dynamic macd", shortPeriod, longPeriod); err != nil {
		return nil, err
	}

	prevShort, prevLong := previousShort, previousLong
	return rolling(len(prices), longPeriod, func(i int) (McGinleyMACD, error) {
		v, err := McGinleyDynamicMACDLine(prices[i:i+longPeriod], shortPeriod, prevShort, prevLong)
		if err != nil {
			return McGinleyMACD{}, err
		}
		prevShort, prevLong = v.ShortMcGinley, v.LongMcGinley
		return v, nil
	})
}
