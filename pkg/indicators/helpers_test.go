package indicators

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.10f, want %.10f (tol %.1e)", label, got, want, tol)
	}
}

func assertErrorIs(t *testing.T, label string, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%s: expected %v, got %v", label, target, err)
	}
}

func assertSlicesEqual(t *testing.T, label string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", label, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got[i], want[i])
		}
	}
}

var allMovingAverages = []MovingAverageKind{MASimple, MASmoothed, MAExponential, MAMedian, MAMode}

var allDeviations = []DeviationKind{DevStandard, DevMean, DevMedian, DevMode, DevUlcer}

// sampleSeries generates a reproducible OHLCV random walk around 100
func sampleSeries(n int) Series {
	r := rand.New(rand.NewSource(42))
	s := Series{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
	}

	price := 100.0
	for i := 0; i < n; i++ {
		open := price
		price += r.NormFloat64()
		if price < 1 {
			price = 1
		}
		s.Open[i] = open
		s.Close[i] = price
		s.High[i] = math.Max(open, price) + r.Float64()
		s.Low[i] = math.Min(open, price) - r.Float64()
		s.Volume[i] = float64(1000 + r.Intn(9000))
	}
	return s
}

// vShapedSeries moves the close by step for n bars and back for n bars,
// rising first unless fallFirst is set
func vShapedSeries(n int, step float64, fallFirst bool) Series {
	if fallFirst {
		step = -step
	}
	s := Series{
		Open:   make([]float64, 2*n),
		High:   make([]float64, 2*n),
		Low:    make([]float64, 2*n),
		Close:  make([]float64, 2*n),
		Volume: make([]float64, 2*n),
	}
	price := 100.0
	for i := 0; i < 2*n; i++ {
		s.Open[i] = price
		s.Close[i] = price
		s.High[i] = price + 1
		s.Low[i] = price - 1
		s.Volume[i] = 1000
		if i < n-1 {
			price += step
		} else {
			price -= step
		}
	}
	return s
}

func risingSeries(n int) Series {
	s := Series{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		base := 100 + float64(i)
		s.Open[i] = base - 0.25
		s.Close[i] = base + 0.5
		s.High[i] = base + 1
		s.Low[i] = base - 1
		s.Volume[i] = 1000
	}
	return s
}

// assertStopFlips checks that out (one value per window ending at bar
// k+period-1) sits on one side of the close for windows from..flip-1 and on
// the other side from flip on
func assertStopFlips(t *testing.T, label string, out, close []float64, period, from, flip int, belowFirst bool) {
	t.Helper()
	for k := from; k < len(out); k++ {
		c := close[k+period-1]
		below := out[k] < c
		if want := belowFirst == (k < flip); below != want {
			t.Errorf("%s window %d (bar %d): stop %v, close %v, expected below=%v", label, k, k+period-1, out[k], c, want)
		}
	}
}
