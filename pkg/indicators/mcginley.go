package indicators

import (
	"fmt"
	"math"
)

// McGinleyDynamic is a self-adjusting moving average that speeds up in
// falling markets and slows down in rising ones
//
// Formula:
// MD_t = MD_{t-1} + (P_t - MD_{t-1}) / (N × (P_t / MD_{t-1})^4)
//
// A previous value of 0 means "no history": the latest price is returned.
func McGinleyDynamic(latest, previous float64, period int) (float64, error) {
	if period < 1 {
		return 0, fmt.Errorf("%w: mcginley dynamic: period must be positive, got %d", ErrInvalidInput, period)
	}
	if previous == 0 {
		return latest, nil
	}
	if latest == 0 {
		return 0, fmt.Errorf("%w: mcginley dynamic with zero price", ErrDivisionByZero)
	}
	return previous + (latest-previous)/(float64(period)*math.Pow(latest/previous, 4)), nil
}

// McGinleyDynamicBulk folds McGinleyDynamic over prices
//
// Output i corresponds to prices[i+period-1]; the first step is seeded by
// previous and every later step by the output before it. Seeding a second
// call with the last output continues the series without a seam.
func McGinleyDynamicBulk(prices []float64, previous float64, period int) ([]float64, error) {
	if err := requirePeriod("mcginley dynamic", len(prices), period); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(prices)-period+1)
	prev := previous
	for i := period - 1; i < len(prices); i++ {
		md, err := McGinleyDynamic(prices[i], prev, period)
		if err != nil {
			return nil, err
		}
		out = append(out, md)
		prev = md
	}
	return out, nil
}
