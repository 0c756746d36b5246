package indicators

// InternalBarStrength locates the close inside the bar range
//
// Formula: IBS = (Close - Low) / (High - Low)
//
// Range: 0 to 1. A bar with no range reads 0.5.
func InternalBarStrength(high, low, close float64) float64 {
	if high == low {
		return 0.5
	}
	return (close - low) / (high - low)
}

// InternalBarStrengthBulk applies InternalBarStrength bar by bar
func InternalBarStrengthBulk(high, low, close []float64) ([]float64, error) {
	if err := requireWindow("internal bar strength", len(close)); err != nil {
		return nil, err
	}
	if err := requireSameLength("internal bar strength", high, low, close); err != nil {
		return nil, err
	}

	out := make([]float64, len(close))
	for i := range close {
		out[i] = InternalBarStrength(high[i], low[i], close[i])
	}
	return out, nil
}
