package indicators

import "fmt"

// MovingConstantEnvelopes plots a fixed percentage above and below a
// moving average of the window.
//
// Components:
// - Middle: MA(window, kind)
// - Upper:  Middle × (1 + difference/100)
// - Lower:  Middle × (1 - difference/100)
//
// Properties:
// - Fixed percentage bands (unlike Bollinger which uses a deviation)
// - Works well in ranging markets
func MovingConstantEnvelopes(prices []float64, kind MovingAverageKind, difference float64) (Band, error) {
	middle, err := MovingAverage(prices, kind)
	if err != nil {
		return Band{}, fmt.Errorf("moving constant envelopes: %w", err)
	}
	return envelope(middle, difference), nil
}

// MovingConstantEnvelopesBulk applies MovingConstantEnvelopes to every window of length period
func MovingConstantEnvelopesBulk(prices []float64, kind MovingAverageKind, difference float64, period int) ([]Band, error) {
	if err := requirePeriod("moving constant envelopes", len(prices), period); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (Band, error) {
		return MovingConstantEnvelopes(prices[i:i+period], kind, difference)
	})
}

// McGinleyDynamicEnvelopes uses the McGinley dynamic of the newest price as
// the middle line. previous is the McGinley value of the prior window (0 if none);
// the returned Middle seeds the next call.
func McGinleyDynamicEnvelopes(prices []float64, difference, previous float64) (Band, error) {
	if err := requireWindow("mcginley dynamic envelopes", len(prices)); err != nil {
		return Band{}, err
	}
	middle, err := McGinleyDynamic(prices[len(prices)-1], previous, len(prices))
	if err != nil {
		return Band{}, err
	}
	return envelope(middle, difference), nil
}

// McGinleyDynamicEnvelopesBulk carries the McGinley middle line across windows
func McGinleyDynamicEnvelopesBulk(prices []float64, difference, previous float64, period int) ([]Band, error) {
	if err := requirePeriod("mcginley dynamic envelopes", len(prices), period); err != nil {
		return nil, err
	}
	prev := previous
	return rolling(len(prices), period, func(i int) (Band, error) {
		b, err := McGinleyDynamicEnvelopes(prices[i:i+period], difference, prev)
		if err != nil {
			return Band{}, err
		}
		prev = b.Middle
		return b, nil
	})
}

func envelope(middle, difference float64) Band {
	diff := middle * difference / 100
	return Band{
		Lower:  middle - diff,
		Middle: middle,
		Upper:  middle + diff,
	}
}
