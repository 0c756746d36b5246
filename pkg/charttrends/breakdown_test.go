package charttrends

import (
	"errors"
	"testing"

	"github.com/yourusername/quantlink-ti/pkg/indicators"
)

func assertContiguous(t *testing.T, segments []Segment, n int) {
	t.Helper()
	if len(segments) == 0 {
		t.Fatal("Expected at least one segment")
	}
	if segments[0].Start != 0 {
		t.Errorf("Expected the first segment to start at 0, got %d", segments[0].Start)
	}
	if last := segments[len(segments)-1]; last.End != n-1 {
		t.Errorf("Expected the last segment to end at %d, got %d", n-1, last.End)
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Start != segments[i-1].End {
			t.Errorf("Segment %d starts at %d, previous ends at %d", i, segments[i].Start, segments[i-1].End)
		}
	}
	for i, s := range segments {
		if s.End <= s.Start {
			t.Errorf("Segment %d is empty: %+v", i, s)
		}
	}
}

func TestBreakDownTrends_StraightLine(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 10 + float64(i)
	}

	segments, err := BreakDownTrends(prices, DefaultBreakDownConfig())
	if err != nil {
		t.Fatalf("BreakDownTrends returned error: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("Expected a single segment, got %+v", segments)
	}
	assertContiguous(t, segments, len(prices))
	if !almostEqual(segments[0].Slope, 1, 1e-9) || !almostEqual(segments[0].Intercept, 10, 1e-9) {
		t.Errorf("Expected slope 1 intercept 10, got %+v", segments[0])
	}
}

func TestBreakDownTrends_Flat(t *testing.T) {
	segments, err := BreakDownTrends([]float64{5, 5, 5, 5, 5}, DefaultBreakDownConfig())
	if err != nil {
		t.Fatalf("BreakDownTrends returned error: %v", err)
	}
	if len(segments) != 1 || segments[0].Slope != 0 {
		t.Errorf("Expected one flat segment, got %+v", segments)
	}
}

func TestBreakDownTrends_Reversal(t *testing.T) {
	prices := make([]float64, 21)
	for i := range prices {
		if i <= 10 {
			prices[i] = float64(i)
		} else {
			prices[i] = float64(20 - i)
		}
	}

	segments, err := BreakDownTrends(prices, DefaultBreakDownConfig())
	if err != nil {
		t.Fatalf("BreakDownTrends returned error: %v", err)
	}
	if len(segments) < 2 {
		t.Fatalf("Expected the reversal to split the series, got %+v", segments)
	}
	assertContiguous(t, segments, len(prices))
	if segments[0].Slope <= 0 {
		t.Errorf("Expected a rising first segment, got %+v", segments[0])
	}
	if last := segments[len(segments)-1]; last.Slope >= 0 {
		t.Errorf("Expected a falling last segment, got %+v", last)
	}
}

func TestBreakDownTrends_ShortSeries(t *testing.T) {
	segments, err := BreakDownTrends([]float64{1, 2}, DefaultBreakDownConfig())
	if err != nil {
		t.Fatalf("BreakDownTrends returned error: %v", err)
	}
	if len(segments) != 1 || segments[0].Start != 0 || segments[0].End != 1 {
		t.Errorf("Expected one segment 0..1, got %+v", segments)
	}

	if _, err := BreakDownTrends([]float64{1}, DefaultBreakDownConfig()); !errors.Is(err, indicators.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestBreakDownConfig_Validate(t *testing.T) {
	if err := DefaultBreakDownConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}

	cfg := DefaultBreakDownConfig()
	cfg.MaxOutliers = -1
	if err := cfg.Validate(); !errors.Is(err, indicators.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for negative outliers, got %v", err)
	}

	cfg = DefaultBreakDownConfig()
	cfg.HardDurbinWatsonMin = 4
	if _, err := BreakDownTrends([]float64{1, 2, 3}, cfg); !errors.Is(err, indicators.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for inverted Durbin-Watson bounds, got %v", err)
	}
}
