package indicators

import (
	"math"
	"testing"

	"github.com/yourusername/quantlink-ti/pkg/stats"
)

func TestUlcerIndex(t *testing.T) {
	got, err := UlcerIndex([]float64{10, 8, 12, 9})
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	assertClose(t, "ulcer", got, math.Sqrt(1025.0/4), 1e-9)

	if got, _ := UlcerIndex([]float64{1, 2, 3, 4}); got != 0 {
		t.Errorf("Expected 0 without drawdown, got %v", got)
	}

	s := sampleSeries(30)
	bulk, err := UlcerIndexBulk(s.Close, 14)
	if err != nil {
		t.Fatalf("bulk returned error: %v", err)
	}
	dev, _ := DeviationBulk(s.Close, DevUlcer, 14)
	assertSlicesEqual(t, "ulcer", bulk, dev)
}

func TestVolatilitySystemBulk_Rising(t *testing.T) {
	s := risingSeries(30)
	out, err := VolatilitySystemBulk(s.High, s.Low, s.Close, 7, 3, MASimple)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	if len(out) != 24 {
		t.Fatalf("Expected 24 values, got %d", len(out))
	}
	for i, v := range out {
		if v >= s.Close[i+6] {
			t.Errorf("[%d]: expected a stop below the close in an uptrend, got %v", i, v)
		}
	}
}

func TestCorrelateAssetPrices(t *testing.T) {
	a := []float64{1, 3, 2, 5, 4}
	b := make([]float64, len(a))
	for i, v := range a {
		b[i] = 2*v + 1
	}
	got, err := CorrelateAssetPrices(a, b, MASimple, DevStandard)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	assertClose(t, "perfect", got, 1, 1e-12)

	s := sampleSeries(30)
	other := sampleSeries(30).Open
	got, _ = CorrelateAssetPrices(s.Close, other, MASimple, DevStandard)
	assertClose(t, "pearson", got, stats.Correlation(s.Close, other), 1e-9)

	_, err = CorrelateAssetPrices([]float64{1, 1, 1}, []float64{1, 2, 3}, MASimple, DevStandard)
	assertErrorIs(t, "flat", err, ErrDivisionByZero)

	_, err = CorrelateAssetPricesBulk(a, b[:4], MASimple, DevStandard, 2)
	assertErrorIs(t, "mismatched", err, ErrMismatchedLengths)
}

func TestReturnOnInvestment(t *testing.T) {
	got, err := ReturnOnInvestment(100, 110, 1000)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	assertClose(t, "value", got.Value, 1100, 1e-9)
	assertClose(t, "percent", got.PercentReturn, 10, 1e-9)

	bulk, err := ReturnOnInvestmentBulk([]float64{100, 110, 121}, 1000)
	if err != nil {
		t.Fatalf("bulk returned error: %v", err)
	}
	if len(bulk) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(bulk))
	}
	assertClose(t, "compounded", bulk[1].Value, 1210, 1e-9)
	assertClose(t, "step return", bulk[1].PercentReturn, 10, 1e-9)

	_, err = ReturnOnInvestment(0, 1, 1)
	assertErrorIs(t, "zero start", err, ErrDivisionByZero)
}

func TestInternalBarStrength(t *testing.T) {
	if got := InternalBarStrength(10, 0, 7.5); got != 0.75 {
		t.Errorf("Expected 0.75, got %v", got)
	}
	if got := InternalBarStrength(5, 5, 5); got != 0.5 {
		t.Errorf("Expected 0.5 for a zero range, got %v", got)
	}

	s := sampleSeries(20)
	bulk, err := InternalBarStrengthBulk(s.High, s.Low, s.Close)
	if err != nil {
		t.Fatalf("bulk returned error: %v", err)
	}
	for i, v := range bulk {
		if v < 0 || v > 1 {
			t.Errorf("[%d]: IBS out of range: %v", i, v)
		}
	}
}

func TestPositivityIndicator(t *testing.T) {
	open := []float64{10, 11, 12, 13}
	close := []float64{10, 10, 11, 12}
	out, err := PositivityIndicatorBulk(open, close, 2, MASimple)
	if err != nil {
		t.Fatalf("returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(out))
	}
	assertClose(t, "value[0]", out[0].Value, 20, 1e-9)
	assertClose(t, "signal[0]", out[0].Signal, 15, 1e-9)
	assertClose(t, "value[1]", out[1].Value, 200.0/11, 1e-9)
	assertClose(t, "signal[1]", out[1].Signal, (20+200.0/11)/2, 1e-9)

	_, err = PositivityIndicator(1, 0)
	assertErrorIs(t, "zero close", err, ErrDivisionByZero)
}

func TestVolatilitySystemBulk_FlipsOnReversal(t *testing.T) {
	const period = 5
	tests := []struct {
		name       string
		fallFirst  bool
		belowFirst bool
	}{
		{"rise then fall", false, true},
		{"fall then rise", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := vShapedSeries(20, 2, tt.fallFirst)
			out, err := VolatilitySystemBulk(s.High, s.Low, s.Close, period, 2, MASimple)
			if err != nil {
				t.Fatalf("returned error: %v", err)
			}
			if len(out) != 36 {
				t.Fatalf("Expected 36 values, got %d", len(out))
			}
			assertStopFlips(t, "volatility system", out, s.Close, period, 0, 18, tt.belowFirst)

			// ARC = 2 × 2.8 around the reversal close of bar 22
			want := s.Close[22] + 5.6
			if !tt.belowFirst {
				want = s.Close[22] - 5.6
			}
			assertClose(t, "stop at reversal", out[18], want, 1e-9)
		})
	}
}
