package indicators

import "github.com/yourusername/quantlink-ti/pkg/stats"

// DonchianChannels forms an envelope from the highest high and lowest low
// of the window.
//
// Components:
// - Upper:  highest high
// - Lower:  lowest low
// - Middle: (Upper + Lower) / 2
//
// Properties:
// - Widely used in turtle trading systems
// - Narrow channels flag low volatility and potential breakouts
func DonchianChannels(high, low []float64) (Band, error) {
	if err := requireWindow("donchian channels", len(high)); err != nil {
		return Band{}, err
	}
	if err := requireSameLength("donchian channels", high, low); err != nil {
		return Band{}, err
	}

	upper := stats.Max(high)
	lower := stats.Min(low)
	return Band{
		Lower:  lower,
		Middle: (upper + lower) / 2,
		Upper:  upper,
	}, nil
}

// DonchianChannelsBulk applies DonchianChannels to every window of length period
func DonchianChannelsBulk(high, low []float64, period int) ([]Band, error) {
	if err := requireSameLength("donchian channels", high, low); err != nil {
		return nil, err
	}
	if err := requirePeriod("donchian channels", len(high), period); err != nil {
		return nil, err
	}
	return rolling(len(high), period, func(i int) (Band, error) {
		return DonchianChannels(high[i:i+period], low[i:i+period])
	})
}
