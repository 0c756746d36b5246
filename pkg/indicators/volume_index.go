package indicators

import "fmt"

// VolumeIndex moves the previous index by the percentage change of the close
//
// Formula:
// VI = VI_prev + (Close - Close_prev) / Close_prev × VI_prev
//
// A previous index of 0 means "no history" and starts from a base of 1.
func VolumeIndex(currentClose, previousClose, previousIndex float64) (float64, error) {
	if previousClose == 0 {
		return 0, fmt.Errorf("%w: volume index from zero close", ErrDivisionByZero)
	}
	base := previousIndex
	if base == 0 {
		base = 1
	}
	return base + (currentClose-previousClose)/previousClose*base, nil
}

// PositiveVolumeIndexBulk updates the index only on bars where volume rose
// (len-1 outputs). A previousIndex of 0 starts the index at 1.
func PositiveVolumeIndexBulk(close, volume []float64, previousIndex float64) ([]float64, error) {
	return volumeIndexBulk("positive volume index", close, volume, previousIndex, func(cur, prev float64) bool {
		return cur > prev
	})
}

// NegativeVolumeIndexBulk updates the index only on bars where volume fell
// (len-1 outputs). A previousIndex of 0 starts the index at 1.
func NegativeVolumeIndexBulk(close, volume []float64, previousIndex float64) ([]float64, error) {
	return volumeIndexBulk("negative volume index", close, volume, previousIndex, func(cur, prev float64) bool {
		return cur < prev
	})
}

func volumeIndexBulk(name string, close, volume []float64, previousIndex float64, update func(cur, prev float64) bool) ([]float64, error) {
	if err := requireSameLength(name, close, volume); err != nil {
		return nil, err
	}
	if err := requireMinLength(name, len(close), 2); err != nil {
		return nil, err
	}

	out := make([]float64, len(close)-1)
	index := previousIndex
	if index == 0 {
		index = 1
	}
	for i := 1; i < len(close); i++ {
		if update(volume[i], volume[i-1]) {
			v, err := VolumeIndex(close[i], close[i-1], index)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			index = v
		}
		out[i-1] = index
	}
	return out, nil
}
