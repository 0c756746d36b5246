package indicators

import "fmt"

// RSI (Relative Strength Index) compares the size of recent gains with
// recent losses
//
// Formula:
// Gain_t = max(P_t - P_{t-1}, 0), Loss_t = max(P_{t-1} - P_t, 0)
// RS  = MA(Gains, kind) / MA(Losses, kind)
// RSI = 100 - 100 / (1 + RS)
//
// Range: 0 to 100
// - Above 70: Overbought
// - Below 30: Oversold
//
// A window without losses (including a flat one) reads 100. The window needs
// at least two prices; steps without a gain count as zero gain and vice versa.
func RSI(prices []float64, kind MovingAverageKind) (float64, error) {
	if err := requireMinLength("rsi", len(prices), 2); err != nil {
		return 0, err
	}

	gains := make([]float64, len(prices)-1)
	losses := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains[i-1] = change
		} else {
			losses[i-1] = -change
		}
	}

	avgGain, err := MovingAverage(gains, kind)
	if err != nil {
		return 0, fmt.Errorf("rsi: %w", err)
	}
	avgLoss, err := MovingAverage(losses, kind)
	if err != nil {
		return 0, fmt.Errorf("rsi: %w", err)
	}

	if avgLoss == 0 {
		return 100, nil
	}
	return 100 - 100/(1+avgGain/avgLoss), nil
}

// RSIBulk applies RSI to every window of length period
func RSIBulk(prices []float64, kind MovingAverageKind, period int) ([]float64, error) {
	if err := requirePeriod("rsi", len(prices), period); err != nil {
		return nil, err
	}
	if err := requireMinLength("rsi period", period, 2); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (float64, error) {
		return RSI(prices[i:i+period], kind)
	})
}
