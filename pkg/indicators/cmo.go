package indicators

// ChandeMomentumOscillator compares total up moves with total down moves
//
// Formula:
// CMO = 100 × (Σ Up - Σ Down) / (Σ Up + Σ Down)
//
// Range: -100 to +100. A window without movement reads 0.
// - Above +50: Overbought
// - Below -50: Oversold
func ChandeMomentumOscillator(prices []float64) (float64, error) {
	if err := requireMinLength("chande momentum oscillator", len(prices), 2); err != nil {
		return 0, err
	}

	var up, down float64
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			up += change
		} else {
			down -= change
		}
	}

	if up+down == 0 {
		return 0, nil
	}
	return 100 * (up - down) / (up + down), nil
}

// ChandeMomentumOscillatorBulk applies ChandeMomentumOscillator to every window of length period
func ChandeMomentumOscillatorBulk(prices []float64, period int) ([]float64, error) {
	if err := requirePeriod("chande momentum oscillator", len(prices), period); err != nil {
		return nil, err
	}
	if err := requireMinLength("chande momentum oscillator period", period, 2); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (float64, error) {
		return ChandeMomentumOscillator(prices[i : i+period])
	})
}
