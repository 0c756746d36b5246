package stats

import (
	"math"
	"testing"
)

func TestCorrelation(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		y        []float64
		expected float64
	}{
		{name: "Perfect positive", x: []float64{1, 2, 3, 4, 5}, y: []float64{2, 4, 6, 8, 10}, expected: 1.0},
		{name: "Perfect negative", x: []float64{1, 2, 3, 4, 5}, y: []float64{10, 8, 6, 4, 2}, expected: -1.0},
		{name: "Flat series", x: []float64{1, 2, 3}, y: []float64{5, 5, 5}, expected: 0.0},
		{name: "Mismatched length", x: []float64{1, 2}, y: []float64{1}, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Correlation(tt.x, tt.y)
			if !almostEqual(result, tt.expected, 1e-10) {
				t.Errorf("Correlation() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	// var(x) = 2, cov = 2 * 2
	if result := Covariance(x, y); !almostEqual(result, 4.0, 1e-10) {
		t.Errorf("Covariance() = %v, want 4", result)
	}
}

func TestLinearRegression(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}

	slope, intercept := LinearRegression(x, y)
	if !almostEqual(slope, 2.0, 1e-10) {
		t.Errorf("slope = %v, want 2", slope)
	}
	if !almostEqual(intercept, 1.0, 1e-10) {
		t.Errorf("intercept = %v, want 1", intercept)
	}

	slope, intercept = LinearRegression([]float64{3, 3, 3}, []float64{1, 2, 3})
	if slope != 0 || intercept != 2 {
		t.Errorf("Degenerate x: got (%v, %v), want (0, 2)", slope, intercept)
	}
}

func TestFitLine_PerfectLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{10, 12, 14, 16, 18, 20}

	fit := FitLine(x, y)
	if !almostEqual(fit.Slope, 2, 1e-10) || !almostEqual(fit.Intercept, 10, 1e-10) {
		t.Errorf("Expected slope 2 intercept 10, got %v %v", fit.Slope, fit.Intercept)
	}
	if !almostEqual(fit.RSquared, 1, 1e-10) {
		t.Errorf("Expected R² 1, got %v", fit.RSquared)
	}
	if fit.RMSE > 1e-10 {
		t.Errorf("Expected RMSE ~0, got %v", fit.RMSE)
	}
	if fit.Observations != 6 {
		t.Errorf("Expected 6 observations, got %d", fit.Observations)
	}
}

func TestFitLine_Flat(t *testing.T) {
	fit := FitLine([]float64{0, 1, 2}, []float64{4, 4, 4})

	if fit.RSquared != 1 || fit.AdjRSquared != 1 {
		t.Errorf("Expected R² 1 for flat data, got %v / %v", fit.RSquared, fit.AdjRSquared)
	}
	if fit.DurbinWatson != 2 {
		t.Errorf("Expected Durbin-Watson 2 for zero residuals, got %v", fit.DurbinWatson)
	}
}

func TestFitLine_Diagnostics(t *testing.T) {
	// alternating residuals give strong negative autocorrelation (DW near 4)
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{1, -1, 1, -1, 1, -1, 1, -1}

	fit := FitLine(x, y)
	if fit.DurbinWatson < 3 {
		t.Errorf("Expected Durbin-Watson above 3, got %v", fit.DurbinWatson)
	}
	if fit.RSquared < 0 || fit.RSquared > 1 {
		t.Errorf("R² out of range: %v", fit.RSquared)
	}
	if fit.AdjRSquared > fit.RSquared {
		t.Errorf("Adjusted R² %v should not exceed R² %v", fit.AdjRSquared, fit.RSquared)
	}
	if math.IsNaN(fit.RMSE) || fit.RMSE <= 0 {
		t.Errorf("Expected positive RMSE, got %v", fit.RMSE)
	}
}
