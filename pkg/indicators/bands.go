package indicators

import "fmt"

// MovingConstantBands generalises Bollinger Bands: a moving average with
// bands a multiple of the window deviation away.
//
// Formula:
// Middle = MA(window, maKind)
// Upper  = Middle + multiplier × Dev(window, devKind)
// Lower  = Middle - multiplier × Dev(window, devKind)
//
// Simple average, standard deviation and multiplier 2 give the classic
// Bollinger Bands.
func MovingConstantBands(prices []float64, maKind MovingAverageKind, devKind DeviationKind, multiplier float64) (Band, error) {
	middle, err := MovingAverage(prices, maKind)
	if err != nil {
		return Band{}, fmt.Errorf("moving constant bands: %w", err)
	}
	dev, err := Deviation(prices, devKind)
	if err != nil {
		return Band{}, fmt.Errorf("moving constant bands: %w", err)
	}
	return band(middle, multiplier*dev), nil
}

// MovingConstantBandsBulk applies MovingConstantBands to every window of length period
func MovingConstantBandsBulk(prices []float64, maKind MovingAverageKind, devKind DeviationKind, multiplier float64, period int) ([]Band, error) {
	if err := requirePeriod("moving constant bands", len(prices), period); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (Band, error) {
		return MovingConstantBands(prices[i:i+period], maKind, devKind, multiplier)
	})
}

// McGinleyDynamicBands centres the bands on the McGinley dynamic of the
// newest price; the returned Middle seeds the next window.
func McGinleyDynamicBands(prices []float64, devKind DeviationKind, multiplier, previous float64) (Band, error) {
	if err := requireWindow("mcginley dynamic bands", len(prices)); err != nil {
		return Band{}, err
	}
	middle, err := McGinleyDynamic(prices[len(prices)-1], previous, len(prices))
	if err != nil {
		return Band{}, err
	}
	dev, err := Deviation(prices, devKind)
	if err != nil {
		return Band{}, fmt.Errorf("mcginley dynamic bands: %w", err)
	}
	return band(middle, multiplier*dev), nil
}

// McGinleyDynamicBandsBulk carries the McGinley middle line across windows
func McGinleyDynamicBandsBulk(prices []float64, devKind DeviationKind, multiplier, previous float64, period int) ([]Band, error) {
	if err := requirePeriod("mcginley dynamic bands", len(prices), period); err != nil {
		return nil, err
	}
	prev := previous
	return rolling(len(prices), period, func(i int) (Band, error) {
		b, err := McGinleyDynamicBands(prices[i:i+period], devKind, multiplier, prev)
		if err != nil {
			return Band{}, err
		}
		prev = b.Middle
		return b, nil
	})
}

func band(middle, width float64) Band {
	return Band{
		Lower:  middle - width,
		Middle: middle,
		Upper:  middle + width,
	}
}
