package indicators

import "fmt"

// ChaikinValue is one Chaikin oscillator reading with the A/D value it ended on
type ChaikinValue struct {
	Oscillator               float64
	AccumulationDistribution float64
}

// ChaikinOscillator is the MACD of the accumulation/distribution line
//
// Formula:
// AD  = A/D line over the window, seeded by previousAD
// Osc = MA(last shortPeriod AD values, shortKind) - MA(AD, longKind)
//
// The window length is the long period; the classic setup is 3 / 10
// exponential.
func ChaikinOscillator(high, low, close, volume []float64, shortPeriod int, previousAD float64, shortKind, longKind MovingAverageKind) (ChaikinValue, error) {
	if err := requireSameLength("chaikin oscillator", high, low, close, volume); err != nil {
		return ChaikinValue{}, err
	}
	if err := requirePeriod("chaikin oscillator short period", len(close), shortPeriod); err != nil {
		return ChaikinValue{}, err
	}

	ad, err := AccumulationDistributionBulk(high, low, close, volume, previousAD)
	if err != nil {
		return ChaikinValue{}, err
	}
	short, err := MovingAverage(ad[len(ad)-shortPeriod:], shortKind)
	if err != nil {
		return ChaikinValue{}, fmt.Errorf("chaikin oscillator: %w", err)
	}
	long, err := MovingAverage(ad, longKind)
	if err != nil {
		return ChaikinValue{}, fmt.Errorf("chaikin oscillator: %w", err)
	}
	return ChaikinValue{Oscillator: short - long, AccumulationDistribution: ad[len(ad)-1]}, nil
}

// ChaikinOscillatorBulk slides windows of length longPeriod; every window's
// A/D line is seeded by the A/D value of the bar just before it, so the
// windows agree with one A/D line over the whole series.
func ChaikinOscillatorBulk(high, low, close, volume []float64, shortPeriod, longPeriod int, previousAD float64, shortKind, longKind MovingAverageKind) ([]ChaikinValue, error) {
	if err := requireSameLength("chaikin oscillator", high, low, close, volume); err != nil {
		return nil, err
	}
	if err := requirePeriod("chaikin oscillator", len(close), longPeriod); err != nil {
		return nil, err
	}
	if err := requireShortPeriod("chaikin oscillator", shortPeriod, longPeriod); err != nil {
		return nil, err
	}

	ad, err := AccumulationDistributionBulk(high, low, close, volume, previousAD)
	if err != nil {
		return nil, err
	}
	return rolling(len(close), longPeriod, func(i int) (ChaikinValue, error) {
		seed := previousAD
		if i > 0 {
			seed = ad[i-1]
		}
		j := i + longPeriod
		return ChaikinOscillator(high[i:j], low[i:j], close[i:j], volume[i:j], shortPeriod, seed, shortKind, longKind)
	})
}
