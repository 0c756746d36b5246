package indicators

// OnBalanceVolume adds volume on up closes and subtracts it on down closes
//
// Formula:
// Close > Close_prev: OBV = OBV_prev + Volume
// Close < Close_prev: OBV = OBV_prev - Volume
// otherwise:          OBV = OBV_prev
//
// Properties:
// - Cumulative, the absolute level depends on the seed
// - Divergence from price can signal reversals
func OnBalanceVolume(current, previous, volume, previousOBV float64) float64 {
	switch {
	case current > previous:
		return previousOBV + volume
	case current < previous:
		return previousOBV - volume
	}
	return previousOBV
}

// OnBalanceVolumeBulk folds OnBalanceVolume over prices starting from
// previousOBV. volume[i] belongs to prices[i]; the output has len-1 values,
// one per price after the first.
func OnBalanceVolumeBulk(prices, volume []float64, previousOBV float64) ([]float64, error) {
	if err := requireSameLength("on balance volume", prices, volume); err != nil {
		return nil, err
	}
	if err := requireMinLength("on balance volume", len(prices), 2); err != nil {
		return nil, err
	}

	out := make([]float64, len(prices)-1)
	obv := previousOBV
	for i := 1; i < len(prices); i++ {
		obv = OnBalanceVolume(prices[i], prices[i-1], volume[i], obv)
		out[i-1] = obv
	}
	return out, nil
}
