package indicators

import "fmt"

// RateOfChange is the percentage change from previous to current
//
// Formula: ROC = 100 × (Current - Previous) / Previous
func RateOfChange(current, previous float64) (float64, error) {
	if previous == 0 {
		return 0, fmt.Errorf("%w: rate of change from zero", ErrDivisionByZero)
	}
	return 100 * (current - previous) / previous, nil
}

// RateOfChangeBulk returns the change between consecutive prices (len-1 values)
func RateOfChangeBulk(prices []float64) ([]float64, error) {
	if err := requireMinLength("rate of change", len(prices), 2); err != nil {
		return nil, err
	}

	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		roc, err := RateOfChange(prices[i], prices[i-1])
		if err != nil {
			return nil, err
		}
		out[i-1] = roc
	}
	return out, nil
}
