package indicators

import "fmt"

// Supertrend is a trend-following stop level built from ATR bands around
// the bar midpoint
//
// Formula:
// 1. ATR over the window (averaged with kind)
// 2. Basic Upper Band = (High + Low) / 2 + Multiplier × ATR
// 3. Basic Lower Band = (High + Low) / 2 - Multiplier × ATR
// 4. Final Upper Band = Basic UB < Final UB[-1] or Close[-1] > Final UB[-1] ? Basic UB : Final UB[-1]
// 5. Final Lower Band = Basic LB > Final LB[-1] or Close[-1] < Final LB[-1] ? Basic LB : Final LB[-1]
// 6. The first window starts in an uptrend when Close >= (High + Low) / 2
// 7. An uptrend flips down when Close < Final LB, a downtrend flips up when Close > Final UB
// 8. Supertrend = uptrend ? Final LB : Final UB
//
// Properties:
// - Stays in trend until reversal
// - Less prone to whipsaws than simple moving averages
func Supertrend(high, low, close []float64, kind MovingAverageKind, multiplier float64) (float64, error) {
	out, err := SupertrendBulk(high, low, close, kind, multiplier, len(close))
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// SupertrendBulk carries the final bands and trend direction across windows of length period
func SupertrendBulk(high, low, close []float64, kind MovingAverageKind, multiplier float64, period int) ([]float64, error) {
	if err := requireSameLength("supertrend", high, low, close); err != nil {
		return nil, err
	}
	if err := requirePeriod("supertrend", len(close), period); err != nil {
		return nil, err
	}

	var (
		finalUpper, finalLower float64
		uptrend                bool
	)
	return rolling(len(close), period, func(i int) (float64, error) {
		j := i + period
		atr, err := AverageTrueRange(close[i:j], high[i:j], low[i:j], kind)
		if err != nil {
			return 0, fmt.Errorf("supertrend: %w", err)
		}

		last := j - 1
		hl2 := (high[last] + low[last]) / 2
		basicUpper := hl2 + multiplier*atr
		basicLower := hl2 - multiplier*atr

		if i == 0 {
			finalUpper, finalLower = basicUpper, basicLower
			uptrend = close[last] >= hl2
		} else {
			prevClose := close[last-1]
			if basicUpper < finalUpper || prevClose > finalUpper {
				finalUpper = basicUpper
			}
			if basicLower > finalLower || prevClose < finalLower {
				finalLower = basicLower
			}
			if uptrend && close[last] < finalLower {
				uptrend = false
			} else if !uptrend && close[last] > finalUpper {
				uptrend = true
			}
		}

		if uptrend {
			return finalLower, nil
		}
		return finalUpper, nil
	})
}
