package indicators

import "fmt"

// VolumePriceTrend accumulates volume weighted by the percentage price change
//
// Formula:
// VPT = VPT_prev + Volume × (Close - Close_prev) / Close_prev
//
// Properties:
// - Similar to OBV but scales volume by the size of the move
// - Cumulative, the absolute level depends on the seed
func VolumePriceTrend(current, previous, volume, previousVPT float64) (float64, error) {
	if previous == 0 {
		return 0, fmt.Errorf("%w: volume price trend from zero price", ErrDivisionByZero)
	}
	return previousVPT + volume*(current-previous)/previous, nil
}

// VolumePriceTrendBulk folds VolumePriceTrend over prices (len-1 outputs);
// volume[i] belongs to prices[i]
func VolumePriceTrendBulk(prices, volume []float64, previousVPT float64) ([]float64, error) {
	if err := requireSameLength("volume price trend", prices, volume); err != nil {
		return nil, err
	}
	if err := requireMinLength("volume price trend", len(prices), 2); err != nil {
		return nil, err
	}

	out := make([]float64, len(prices)-1)
	vpt := previousVPT
	for i := 1; i < len(prices); i++ {
		v, err := VolumePriceTrend(prices[i], prices[i-1], volume[i], vpt)
		if err != nil {
			return nil, err
		}
		vpt = v
		out[i-1] = vpt
	}
	return out, nil
}
