package indicators

import "fmt"

// VolatilitySystemBulk is Wilder's volatility system: a stop-and-reverse
// level kept an ATR multiple away from the significant close of the trend
//
// Rules:
// - ARC = multiplier × ATR(window, kind)
// - the first window is long when its last close is at or above its first close
// - SIC (significant close) is the highest close of a long run, the lowest of a short run
// - SAR = SIC - ARC (long) or SIC + ARC (short)
// - a close through the SAR reverses the run and restarts SIC at that close
//
// One value per window of length period.
func VolatilitySystemBulk(high, low, close []float64, period int, multiplier float64, kind MovingAverageKind) ([]float64, error) {
	if err := requireSameLength("volatility system", high, low, close); err != nil {
		return nil, err
	}
	if err := requirePeriod("volatility system", len(close), period); err != nil {
		return nil, err
	}

	var (
		long bool
		sic  float64
	)
	return rolling(len(close), period, func(i int) (float64, error) {
		j := i + period
		atr, err := AverageTrueRange(close[i:j], high[i:j], low[i:j], kind)
		if err != nil {
			return 0, fmt.Errorf("volatility system: %w", err)
		}
		arc := multiplier * atr
		c := close[j-1]

		if i == 0 {
			long = c >= close[i]
			sic = c
		} else if (long && c > sic) || (!long && c < sic) {
			sic = c
		}

		sar := sic + arc
		if long {
			sar = sic - arc
		}

		switch {
		case long && c < sar:
			long, sic = false, c
			sar = sic + arc
		case !long && c > sar:
			long, sic = true, c
			sar = sic - arc
		}
		return sar, nil
	})
}
