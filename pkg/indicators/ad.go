package indicators

// AccumulationDistribution adds one bar's money flow volume to the A/D line
//
// Formula:
// MFM = ((Close - Low) - (High - Close)) / (High - Low)
// AD  = AD_prev + MFM × Volume
//
// A bar with High == Low leaves the line unchanged.
func AccumulationDistribution(high, low, close, volume, previousAD float64) float64 {
	r := high - low
	if r == 0 {
		return previousAD
	}
	return previousAD + ((close-low)-(high-close))/r*volume
}

// AccumulationDistributionBulk folds AccumulationDistribution over every bar
// (n outputs) starting from previousAD
func AccumulationDistributionBulk(high, low, close, volume []float64, previousAD float64) ([]float64, error) {
	if err := requireWindow("accumulation distribution", len(close)); err != nil {
		return nil, err
	}
	if err := requireSameLength("accumulation distribution", high, low, close, volume); err != nil {
		return nil, err
	}

	out := make([]float64, len(close))
	ad := previousAD
	for i := range close {
		ad = AccumulationDistribution(high[i], low[i], close[i], volume[i], ad)
		out[i] = ad
	}
	return out, nil
}
