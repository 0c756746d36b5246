package indicators

import "fmt"

// CorrelateAssetPrices correlates two aligned price windows using the
// selected centre and dispersion measures
//
// Formula:
// cov = mean((A - MA(A)) × (B - MA(B)))
// r   = cov / (Dev(A) × Dev(B))
//
// Simple average and standard deviation give the Pearson coefficient.
func CorrelateAssetPrices(a, b []float64, maKind MovingAverageKind, devKind DeviationKind) (float64, error) {
	if err := requireWindow("correlation", len(a)); err != nil {
		return 0, err
	}
	if err := requireSameLength("correlation", a, b); err != nil {
		return 0, err
	}

	meanA, err := MovingAverage(a, maKind)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	meanB, err := MovingAverage(b, maKind)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	devA, err := Deviation(a, devKind)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	devB, err := Deviation(b, devKind)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	if devA == 0 || devB == 0 {
		return 0, fmt.Errorf("%w: correlation of a flat series", ErrDivisionByZero)
	}

	var cov float64
	for i := range a {
		cov += (a[i] - meanA) * (b[i] - meanB)
	}
	cov /= float64(len(a))
	return cov / (devA * devB), nil
}

// CorrelateAssetPricesBulk applies CorrelateAssetPrices to every window of length period
func CorrelateAssetPricesBulk(a, b []float64, maKind MovingAverageKind, devKind DeviationKind, period int) ([]float64, error) {
	if err := requireSameLength("correlation", a, b); err != nil {
		return nil, err
	}
	if err := requirePeriod("correlation", len(a), period); err != nil {
		return nil, err
	}
	return rolling(len(a), period, func(i int) (float64, error) {
		return CorrelateAssetPrices(a[i:i+period], b[i:i+period], maKind, devKind)
	})
}
