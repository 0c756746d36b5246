package indicators

// UlcerIndex measures downside volatility as the root mean square of
// percentage drawdowns from the running high of the window
//
// Formula:
// DD_t = 100 × (P_t - max(P_0..P_t)) / max(P_0..P_t)
// UI   = sqrt(mean(DD²))
//
// Properties:
// - Only drawdowns count, rallies never raise the index
// - Zero for a window that never falls below its running high
func UlcerIndex(prices []float64) (float64, error) {
	return Deviation(prices, DevUlcer)
}

// UlcerIndexBulk applies UlcerIndex to every window of length period
func UlcerIndexBulk(prices []float64, period int) ([]float64, error) {
	return DeviationBulk(prices, DevUlcer, period)
}
