package indicators

// MoneyFlowIndex is a volume-weighted momentum oscillator, often called
// "volume-weighted RSI"
//
// Calculation:
// 1. Raw Money Flow = Price × Volume
// 2. Price > Price_prev: positive flow, Price < Price_prev: negative flow
// 3. Money Flow Ratio = Σ positive / Σ negative
// 4. MFI = 100 - 100 / (1 + ratio)
//
// Range: 0 to 100. A window without negative flow reads 100.
// Pass typical prices to get the classic definition.
func MoneyFlowIndex(prices, volume []float64) (float64, error) {
	if err := requireSameLength("money flow index", prices, volume); err != nil {
		return 0, err
	}
	if err := requireMinLength("money flow index", len(prices), 2); err != nil {
		return 0, err
	}

	var positive, negative float64
	for i := 1; i < len(prices); i++ {
		flow := prices[i] * volume[i]
		switch {
		case prices[i] > prices[i-1]:
			positive += flow
		case prices[i] < prices[i-1]:
			negative += flow
		}
	}

	if negative == 0 {
		return 100, nil
	}
	return 100 - 100/(1+positive/negative), nil
}

// MoneyFlowIndexBulk applies MoneyFlowIndex to every window of length period
func MoneyFlowIndexBulk(prices, volume []float64, period int) ([]float64, error) {
	if err := requireSameLength("money flow index", prices, volume); err != nil {
		return nil, err
	}
	if err := requirePeriod("money flow index", len(prices), period); err != nil {
		return nil, err
	}
	if err := requireMinLength("money flow index period", period, 2); err != nil {
		return nil, err
	}
	return rolling(len(prices), period, func(i int) (float64, error) {
		return MoneyFlowIndex(prices[i:i+period], volume[i:i+period])
	})
}
