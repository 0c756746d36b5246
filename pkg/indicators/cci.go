package indicators

import "fmt"

// CommodityChannelIndex measures how far the newest price sits from the
// window average in units of the window deviation
//
// Formula:
// CCI = (P_last - MA(window, maKind)) / (constant × Dev(window, devKind))
//
// The classic definition uses typical prices, a simple average, mean
// absolute deviation and constant 0.015.
//
// Range: unbounded, usually within -100 to +100
// - Above +100: Overbought
// - Below -100: Oversold
func CommodityChannelIndex(prices []float64, maKind MovingAverageKind, devKind DeviationKind, constant float64) (float64, error) {
	if err := requireWindow("commodity channel index", len(prices)); err != nil {
		return 0, err
	}

	ma, err := MovingAverage(prices, maKind)
	if err != nil {
		return 0, fmt.Errorf("commodity channel index: %w", err)
	}
	return cci(prices, ma, devKind, constant)
}

// CommodityChannelIndexBulk applies CommodityChannelIndex to every window of length period
func CommodityChannelIndexBulk(prices []float64, maKind MovingAverageKind, devKind DeviationKind, constant float64, period int) ([]float64, error) {
	if err := requirePeriod("commodity channel index", len(prices), period); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (float64, error) {
		return CommodityChannelIndex(prices[i:i+period], maKind, devKind, constant)
	})
}

// McGinleyCCI is a commodity channel index centred on the McGinley dynamic
type McGinleyCCI struct {
	CCI      float64
	McGinley float64
}

// McGinleyDynamicCommodityChannelIndex replaces the moving average with the
// McGinley dynamic of the newest price. previous is the McGinley value of
// the prior window (0 if none).
func McGinleyDynamicCommodityChannelIndex(prices []float64, previous float64, devKind DeviationKind, constant float64) (McGinleyCCI, error) {
	if err := requireWindow("mcginley dynamic cci", len(prices)); err != nil {
		return McGinleyCCI{}, err
	}

	md, err := McGinleyDynamic(prices[len(prices)-1], previous, len(prices))
	if err != nil {
		return McGinleyCCI{}, err
	}
	v, err := cci(prices, md, devKind, constant)
	if err != nil {
		return McGinleyCCI{}, err
	}
	return McGinleyCCI{CCI: v, McGinley: md}, nil
}

// McGinleyDynamicCommodityChannelIndexBulk carries the McGinley value across windows
func McGinleyDynamicCommodityChannelIndexBulk(prices []float64, previous float64, devKind DeviationKind, constant float64, period int) ([]McGinleyCCI, error) {
	if err := requirePeriod("mcginley dynamic cci", len(prices), period); err != nil {
		return nil, err
	}
	prev := previous
	return rolling(len(prices), period, func(i int) (McGinleyCCI, error) {
		v, err := McGinleyDynamicCommodityChannelIndex(prices[i:i+period], prev, devKind, constant)
		if err != nil {
			return McGinleyCCI{}, err
		}
		prev = v.McGinley
		return v, nil
	})
}

func cci(prices []float64, center float64, devKind DeviationKind, constant float64) (float64, error) {
	dev, err := Deviation(prices, devKind)
	if err != nil {
		return 0, fmt.Errorf("commodity channel index: %w", err)
	}
	if dev == 0 || constant == 0 {
		return 0, fmt.Errorf("%w: commodity channel index with zero deviation", ErrDivisionByZero)
	}
	return (prices[len(prices)-1] - center) / (constant * dev), nil
}
