package indicators

import "testing"

func TestRSI(t *testing.T) {
	got, err := RSI([]float64{1, 2, 1, 2, 1}, MASimple)
	if err != nil {
		t.Fatalf("RSI returned error: %v", err)
	}
	if got != 50 {
		t.Errorf("Expected 50 for balanced moves, got %v", got)
	}

	rising := []float64{1, 2, 3, 4, 5, 6}
	falling := []float64{6, 5, 4, 3, 2, 1}
	for _, kind := range allMovingAverages {
		if v, err := RSI(rising, kind); err != nil || v != 100 {
			t.Errorf("%v: expected 100 for a rising series, got %v (%v)", kind, v, err)
		}
		if v, err := RSI(falling, kind); err != nil || v != 0 {
			t.Errorf("%v: expected 0 for a falling series, got %v (%v)", kind, v, err)
		}
	}

	_, err = RSI([]float64{1}, MASimple)
	assertErrorIs(t, "single price", err, ErrInvalidInput)
	_, err = RSIBulk([]float64{1, 2, 3}, MASimple, 1)
	assertErrorIs(t, "period 1", err, ErrInvalidInput)
}

func TestRSIBulk_Range(t *testing.T) {
	s := sampleSeries(100)
	out, err := RSIBulk(s.Close, MASmoothed, 14)
	if err != nil {
		t.Fatalf("RSIBulk returned error: %v", err)
	}
	if len(out) != 87 {
		t.Fatalf("Expected 87 values, got %d", len(out))
	}
	for i, v := range out {
		if v < 0 || v > 100 {
			t.Errorf("[%d]: RSI out of range: %v", i, v)
		}
	}
}

func TestStochasticOscillator(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"at high", []float64{1, 2, 3}, 100},
		{"at low", []float64{3, 2, 1}, 0},
		{"middle", []float64{0, 10, 5}, 50},
		{"flat", []float64{4, 4, 4}, 50},
	}
	for _, tt := range tests {
		got, err := StochasticOscillator(tt.prices)
		if err != nil {
			t.Fatalf("%s: returned error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSlowAndSlowestStochastic(t *testing.T) {
	s := sampleSeries(40)
	k, err := StochasticOscillatorBulk(s.Close, 14)
	if err != nil {
		t.Fatalf("StochasticOscillatorBulk returned error: %v", err)
	}
	d, err := SlowStochasticBulk(k, MASimple, 3)
	if err != nil {
		t.Fatalf("SlowStochasticBulk returned error: %v", err)
	}
	dd, err := SlowestStochasticBulk(d, MASimple, 3)
	if err != nil {
		t.Fatalf("SlowestStochasticBulk returned error: %v", err)
	}
	if len(d) != len(k)-2 || len(dd) != len(d)-2 {
		t.Fatalf("Unexpected lengths k=%d d=%d dd=%d", len(k), len(d), len(dd))
	}

	want, _ := SlowStochastic(k[:3], MASimple)
	if d[0] != want {
		t.Errorf("Expected first slow value %v, got %v", want, d[0])
	}
	want, _ = SlowestStochastic(d[len(d)-3:], MASimple)
	if dd[len(dd)-1] != want {
		t.Errorf("Expected last slowest value %v, got %v", want, dd[len(dd)-1])
	}
}

func TestWilliamsPercentR(t *testing.T) {
	got, err := WilliamsPercentR([]float64{10, 12}, []float64{8, 9}, 11)
	if err != nil {
		t.Fatalf("WilliamsPercentR returned error: %v", err)
	}
	if got != -25 {
		t.Errorf("Expected -25, got %v", got)
	}

	if got, _ := WilliamsPercentR([]float64{5, 5}, []float64{5, 5}, 5); got != -50 {
		t.Errorf("Expected -50 for a flat range, got %v", got)
	}

	s := sampleSeries(30)
	bulk, err := WilliamsPercentRBulk(s.High, s.Low, s.Close, 14)
	if err != nil {
		t.Fatalf("WilliamsPercentRBulk returned error: %v", err)
	}
	for i, v := range bulk {
		if v > 0 || v < -100 {
			t.Errorf("[%d]: %%R out of range: %v", i, v)
		}
	}
}

func TestMoneyFlowIndex(t *testing.T) {
	got, err := MoneyFlowIndex([]float64{1, 2, 1}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("MoneyFlowIndex returned error: %v", err)
	}
	assertClose(t, "mfi", got, 100-100.0/3, 1e-9)

	if got, _ := MoneyFlowIndex([]float64{1, 2, 3}, []float64{1, 1, 1}); got != 100 {
		t.Errorf("Expected 100 without negative flow, got %v", got)
	}

	_, err = MoneyFlowIndex([]float64{1, 2}, []float64{1})
	assertErrorIs(t, "mismatched", err, ErrMismatchedLengths)
}

func TestRateOfChange(t *testing.T) {
	got, err := RateOfChange(110, 100)
	if err != nil || got != 10 {
		t.Errorf("Expected 10, got %v (%v)", got, err)
	}
	_, err = RateOfChange(1, 0)
	assertErrorIs(t, "zero previous", err, ErrDivisionByZero)

	bulk, err := RateOfChangeBulk([]float64{100, 110, 99})
	if err != nil {
		t.Fatalf("RateOfChangeBulk returned error: %v", err)
	}
	if len(bulk) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(bulk))
	}
	assertClose(t, "roc[0]", bulk[0], 10, 1e-9)
	assertClose(t, "roc[1]", bulk[1], -10, 1e-9)
}

func TestOnBalanceVolume(t *testing.T) {
	if got := OnBalanceVolume(11, 10, 500, 1000); got != 1500 {
		t.Errorf("Expected 1500, got %v", got)
	}
	if got := OnBalanceVolume(9, 10, 500, 1000); got != 500 {
		t.Errorf("Expected 500, got %v", got)
	}
	if got := OnBalanceVolume(10, 10, 500, 1000); got != 1000 {
		t.Errorf("Expected 1000, got %v", got)
	}
}

func TestOnBalanceVolumeBulk_SeedContinuation(t *testing.T) {
	s := sampleSeries(40)
	full, err := OnBalanceVolumeBulk(s.Close, s.Volume, 0)
	if err != nil {
		t.Fatalf("OnBalanceVolumeBulk returned error: %v", err)
	}
	if len(full) != 39 {
		t.Fatalf("Expected 39 values, got %d", len(full))
	}

	head, _ := OnBalanceVolumeBulk(s.Close[:20], s.Volume[:20], 0)
	tail, _ := OnBalanceVolumeBulk(s.Close[19:], s.Volume[19:], head[len(head)-1])
	assertSlicesEqual(t, "obv", append(head, tail...), full)
}

func TestCommodityChannelIndex(t *testing.T) {
	got, err := CommodityChannelIndex([]float64{1, 2, 3}, MASimple, DevMean, 0.015)
	if err != nil {
		t.Fatalf("CommodityChannelIndex returned error: %v", err)
	}
	assertClose(t, "cci", got, 100, 1e-9)

	_, err = CommodityChannelIndex([]float64{2, 2, 2}, MASimple, DevMean, 0.015)
	assertErrorIs(t, "flat window", err, ErrDivisionByZero)

	_, err = CommodityChannelIndex([]float64{1, 2, 3}, MASimple, DevMean, 0)
	assertErrorIs(t, "zero constant", err, ErrDivisionByZero)
}

func TestMcGinleyDynamicCommodityChannelIndex(t *testing.T) {
	got, err := McGinleyDynamicCommodityChannelIndex([]float64{1, 2, 3}, 0, DevMean, 0.015)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	if got.McGinley != 3 || got.CCI != 0 {
		t.Errorf("Expected McGinley 3 and CCI 0 without history, got %+v", got)
	}

	s := sampleSeries(30)
	bulk, err := McGinleyDynamicCommodityChannelIndexBulk(s.Close, 0, DevStandard, 0.015, 10)
	if err != nil {
		t.Fatalf("bulk returned error: %v", err)
	}
	md, _ := McGinleyDynamicBulk(s.Close, 0, 10)
	for i := range bulk {
		if bulk[i].McGinley != md[i] {
			t.Errorf("[%d]: McGinley %v, want %v", i, bulk[i].McGinley, md[i])
		}
	}
}

func TestMACDLine(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6}
	got, err := MACDLine(prices, 3, MASimple, MASimple)
	if err != nil {
		t.Fatalf("MACDLine returned error: %v", err)
	}
	if got != 1.5 {
		t.Errorf("Expected 1.5, got %v", got)
	}

	if got, _ := MACDLine(prices, len(prices), MAExponential, MAExponential); got != 0 {
		t.Errorf("Expected 0 when both averages match, got %v", got)
	}

	_, err = MACDLineBulk(prices, 4, MASimple, 3, MASimple)
	assertErrorIs(t, "short > long", err, ErrPeriodExceedsLength)
}

func TestMACDLineBulkAndSignal(t *testing.T) {
	s := sampleSeries(60)
	macd, err := MACDLineBulk(s.Close, 12, MAExponential, 26, MAExponential)
	if err != nil {
		t.Fatalf("MACDLineBulk returned error: %v", err)
	}
	if len(macd) != 35 {
		t.Fatalf("Expected 35 values, got %d", len(macd))
	}
	single, _ := MACDLine(s.Close[:26], 12, MAExponential, MAExponential)
	if macd[0] != single {
		t.Errorf("Expected %v, got %v", single, macd[0])
	}

	signal, err := SignalLineBulk(macd, MAExponential, 9)
	if err != nil {
		t.Fatalf("SignalLineBulk returned error: %v", err)
	}
	want, _ := SignalLine(macd[len(macd)-9:], MAExponential)
	if signal[len(signal)-1] != want {
		t.Errorf("Expected %v, got %v", want, signal[len(signal)-1])
	}
}

func TestMcGinleyDynamicMACDLine(t *testing.T) {
	got, err := McGinleyDynamicMACDLine([]float64{1, 2, 3, 4}, 2, 0, 0)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	if got.MACD != 0 || got.ShortMcGinley != 4 || got.LongMcGinley != 4 {
		t.Errorf("Expected zero MACD without history, got %+v", got)
	}

	s := sampleSeries(40)
	bulk, err := McGinleyDynamicMACDLineBulk(s.Close, 5, 0, 10, 0)
	if err != nil {
		t.Fatalf("bulk returned error: %v", err)
	}
	for i, v := range bulk {
		if v.MACD != v.ShortMcGinley-v.LongMcGinley {
			t.Errorf("[%d]: MACD %v is not short - long", i, v.MACD)
		}
	}
}

func TestChaikinOscillatorBulk_MatchesGlobalAD(t *testing.T) {
	s := sampleSeries(40)
	out, err := ChaikinOscillatorBulk(s.High, s.Low, s.Close, s.Volume, 3, 10, 0, MAExponential, MAExponential)
	if err != nil {
		t.Fatalf("ChaikinOscillatorBulk returned error: %v", err)
	}
	ad, _ := AccumulationDistributionBulk(s.High, s.Low, s.Close, s.Volume, 0)
	if len(out) != 31 {
		t.Fatalf("Expected 31 values, got %d", len(out))
	}
	for i, v := range out {
		if v.AccumulationDistribution != ad[i+9] {
			t.Errorf("[%d]: AD %v, want %v", i, v.AccumulationDistribution, ad[i+9])
		}
	}

	_, err = ChaikinOscillatorBulk(s.High, s.Low, s.Close, s.Volume, 11, 10, 0, MASimple, MASimple)
	assertErrorIs(t, "short > long", err, ErrPeriodExceedsLength)
}

func TestPercentagePriceOscillator(t *testing.T) {
	got, err := PercentagePriceOscillator([]float64{1, 2, 3, 4, 5, 6}, 3, MASimple)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	assertClose(t, "ppo", got, 100*1.5/3.5, 1e-9)

	_, err = PercentagePriceOscillator([]float64{-1, 1}, 1, MASimple)
	assertErrorIs(t, "zero long average", err, ErrDivisionByZero)

	s := sampleSeries(50)
	bulk, err := PercentagePriceOscillatorBulk(s.Close, 12, 26, MAExponential)
	if err != nil {
		t.Fatalf("bulk returned error: %v", err)
	}
	if len(bulk) != 25 {
		t.Errorf("Expected 25 values, got %d", len(bulk))
	}
}

func TestChandeMomentumOscillator(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"rising", []float64{1, 2, 3}, 100},
		{"falling", []float64{3, 2, 1}, -100},
		{"balanced", []float64{1, 2, 1}, 0},
		{"flat", []float64{2, 2, 2}, 0},
	}
	for _, tt := range tests {
		got, err := ChandeMomentumOscillator(tt.prices)
		if err != nil {
			t.Fatalf("%s: returned error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	_, err := ChandeMomentumOscillatorBulk([]float64{1, 2, 3}, 1)
	assertErrorIs(t, "period 1", err, ErrInvalidInput)
}
