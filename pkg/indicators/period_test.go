package indicators

import "testing"

func TestBulk_PeriodExceedsLength(t *testing.T) {
	s := sampleSeries(30)
	n := len(s.Close)
	p := n + 1
	o, h, l, c, v := s.Open, s.High, s.Low, s.Close, s.Volume

	tests := []struct {
		name string
		call func() error
	}{
		{"moving average", func() error { _, err := MovingAverageBulk(c, MASimple, p); return err }},
		{"deviation", func() error { _, err := DeviationBulk(c, DevStandard, p); return err }},
		{"mcginley dynamic", func() error { _, err := McGinleyDynamicBulk(c, 0, p); return err }},
		{"average true range", func() error { _, err := AverageTrueRangeBulk(c, h, l, MASimple, p); return err }},
		{"envelopes", func() error { _, err := MovingConstantEnvelopesBulk(c, MASimple, 5, p); return err }},
		{"mcginley envelopes", func() error { _, err := McGinleyDynamicEnvelopesBulk(c, 5, 0, p); return err }},
		{"bands", func() error { _, err := MovingConstantBandsBulk(c, MASimple, DevStandard, 2, p); return err }},
		{"mcginley bands", func() error { _, err := McGinleyDynamicBandsBulk(c, DevStandard, 2, 0, p); return err }},
		{"ichimoku", func() error { _, err := IchimokuBulk(h, l, c, 1, 1, p); return err }},
		{"donchian", func() error { _, err := DonchianChannelsBulk(h, l, p); return err }},
		{"keltner", func() error { _, err := KeltnerChannelBulk(h, l, c, MASimple, MASimple, 2, p); return err }},
		{"supertrend", func() error { _, err := SupertrendBulk(h, l, c, MASimple, 3, p); return err }},
		{"rsi", func() error { _, err := RSIBulk(c, MASmoothed, p); return err }},
		{"stochastic", func() error { _, err := StochasticOscillatorBulk(c, p); return err }},
		{"slow stochastic", func() error { _, err := SlowStochasticBulk(c, MASimple, p); return err }},
		{"slowest stochastic", func() error { _, err := SlowestStochasticBulk(c, MASimple, p); return err }},
		{"williams %r", func() error { _, err := WilliamsPercentRBulk(h, l, c, p); return err }},
		{"money flow index", func() error { _, err := MoneyFlowIndexBulk(c, v, p); return err }},
		{"cci", func() error { _, err := CommodityChannelIndexBulk(c, MASimple, DevMean, 0.015, p); return err }},
		{"mcginley cci", func() error {
			_, err := McGinleyDynamicCommodityChannelIndexBulk(c, 0, DevMean, 0.015, p)
			return err
		}},
		{"macd", func() error { _, err := MACDLineBulk(c, 1, MAExponential, p, MAExponential); return err }},
		{"signal line", func() error { _, err := SignalLineBulk(c, MAExponential, p); return err }},
		{"mcginley macd", func() error { _, err := McGinleyDynamicMACDLineBulk(c, 1, 0, p, 0); return err }},
		{"chaikin", func() error {
			_, err := ChaikinOscillatorBulk(h, l, c, v, 1, p, 0, MAExponential, MAExponential)
			return err
		}},
		{"ppo", func() error { _, err := PercentagePriceOscillatorBulk(c, 1, p, MASimple); return err }},
		{"cmo", func() error { _, err := ChandeMomentumOscillatorBulk(c, p); return err }},
		{"aroon up", func() error { _, err := AroonUpBulk(h, p); return err }},
		{"aroon down", func() error { _, err := AroonDownBulk(l, p); return err }},
		{"aroon", func() error { _, err := AroonIndicatorBulk(h, l, p); return err }},
		{"directional movement", func() error { _, err := DirectionalMovementSystemBulk(h, l, c, p, MASmoothed); return err }},
		{"true strength index", func() error { _, err := TrueStrengthIndexBulk(c, MAExponential, n, MAExponential, 1); return err }},
		{"relative vigor index", func() error { _, err := RelativeVigorIndexBulk(o, h, l, c, MASimple, p); return err }},
		{"ulcer index", func() error { _, err := UlcerIndexBulk(c, p); return err }},
		{"volatility system", func() error { _, err := VolatilitySystemBulk(h, l, c, p, 3, MASimple); return err }},
		{"correlation", func() error { _, err := CorrelateAssetPricesBulk(c, o, MASimple, DevStandard, p); return err }},
		{"positivity signal", func() error { _, err := PositivityIndicatorBulk(o, c, n, MASimple); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertErrorIs(t, tt.name, tt.call(), ErrPeriodExceedsLength)
		})
	}
}

func TestSingleAndBulk_SameErrorKind(t *testing.T) {
	s := sampleSeries(30)
	c5 := s.Close[:5]
	h5, l5, v5 := s.High[:5], s.Low[:5], s.Volume[:5]
	h, l, c := s.High, s.Low, s.Close

	tests := []struct {
		name   string
		single func() error
		bulk   func() error
	}{
		{
			"macd short period",
			func() error { _, err := MACDLine(c5, 6, MASimple, MASimple); return err },
			func() error { _, err := MACDLineBulk(c5, 6, MASimple, 5, MASimple); return err },
		},
		{
			"mcginley macd short period",
			func() error { _, err := McGinleyDynamicMACDLine(c5, 6, 0, 0); return err },
			func() error { _, err := McGinleyDynamicMACDLineBulk(c5, 6, 0, 5, 0); return err },
		},
		{
			"ppo short period",
			func() error { _, err := PercentagePriceOscillator(c5, 6, MASimple); return err },
			func() error { _, err := PercentagePriceOscillatorBulk(c5, 6, 5, MASimple); return err },
		},
		{
			"chaikin short period",
			func() error { _, err := ChaikinOscillator(h5, l5, c5, v5, 6, 0, MASimple, MASimple); return err },
			func() error {
				_, err := ChaikinOscillatorBulk(h5, l5, c5, v5, 6, 5, 0, MASimple, MASimple)
				return err
			},
		},
		{
			"ichimoku span b",
			func() error { _, err := Ichimoku(h, l, c, 9, 26, 52); return err },
			func() error { _, err := IchimokuBulk(h, l, c, 9, 26, 52); return err },
		},
		{
			"true strength index",
			func() error { _, err := TrueStrengthIndex(c5, 5, MASimple, MASimple); return err },
			func() error { _, err := TrueStrengthIndexBulk(c5, MASimple, 5, MASimple, 1); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertErrorIs(t, "single", tt.single(), ErrPeriodExceedsLength)
			assertErrorIs(t, "bulk", tt.bulk(), ErrPeriodExceedsLength)
		})
	}
}
