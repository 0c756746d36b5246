package charttrends

import (
	"fmt"
	"math"

	"github.com/yourusername/quantlink-ti/pkg/indicators"
	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// Segment is one fitted trend covering prices[Start..End] inclusive
type Segment struct {
	Start     int
	End       int
	Slope     float64
	Intercept float64
}

// BreakDownConfig holds the acceptance thresholds of BreakDownTrends
//
// A candidate segment fails a threshold set when its adjusted R² is below
// AdjRSquaredMin, its RMSE is above RMSEMultiplier × the mean absolute step
// of the whole series, or its Durbin-Watson statistic is outside
// [DurbinWatsonMin, DurbinWatsonMax]. Hard thresholds should be looser than
// soft ones.
type BreakDownConfig struct {
	MaxOutliers int `yaml:"max_outliers"`

	SoftAdjRSquaredMin  float64 `yaml:"soft_adj_r_squared_min"`
	SoftRMSEMultiplier  float64 `yaml:"soft_rmse_multiplier"`
	SoftDurbinWatsonMin float64 `yaml:"soft_durbin_watson_min"`
	SoftDurbinWatsonMax float64 `yaml:"soft_durbin_watson_max"`

	HardAdjRSquaredMin  float64 `yaml:"hard_adj_r_squared_min"`
	HardRMSEMultiplier  float64 `yaml:"hard_rmse_multiplier"`
	HardDurbinWatsonMin float64 `yaml:"hard_durbin_watson_min"`
	HardDurbinWatsonMax float64 `yaml:"hard_durbin_watson_max"`
}

// DefaultBreakDownConfig returns thresholds suited to daily closes
func DefaultBreakDownConfig() BreakDownConfig {
	return BreakDownConfig{
		MaxOutliers:         1,
		SoftAdjRSquaredMin:  0.75,
		SoftRMSEMultiplier:  1.3,
		SoftDurbinWatsonMin: 1.0,
		SoftDurbinWatsonMax: 3.0,
		HardAdjRSquaredMin:  0.5,
		HardRMSEMultiplier:  2.0,
		HardDurbinWatsonMin: 0.5,
		HardDurbinWatsonMax: 3.5,
	}
}

// Validate checks threshold consistency
func (c BreakDownConfig) Validate() error {
	switch {
	case c.MaxOutliers < 0:
		return fmt.Errorf("%w: max outliers must not be negative", indicators.ErrInvalidInput)
	case c.SoftRMSEMultiplier < 0 || c.HardRMSEMultiplier < 0:
		return fmt.Errorf("%w: rmse multipliers must not be negative", indicators.ErrInvalidInput)
	case c.SoftDurbinWatsonMin > c.SoftDurbinWatsonMax || c.HardDurbinWatsonMin > c.HardDurbinWatsonMax:
		return fmt.Errorf("%w: durbin-watson minimum above maximum", indicators.ErrInvalidInput)
	}
	return nil
}

// BreakDownTrends splits prices into consecutive linear segments
//
// Segments are grown greedily from a start index: the first candidate
// covers three points, then one point is added at a time and refitted.
//   - a hard threshold failure ends the segment
//   - a soft failure counts as an outlier; the segment ends once more than
//     MaxOutliers candidates have failed softly
//   - a passing candidate becomes the segment's accepted end
//
// The next segment starts at the accepted end, so neighbouring segments
// share their pivot point.
func BreakDownTrends(prices []float64, cfg BreakDownConfig) ([]Segment, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: break down trends needs at least 2 prices, got %d", indicators.ErrInvalidInput, len(prices))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseline := meanAbsoluteStep(prices)
	soft := thresholds{cfg.SoftAdjRSquaredMin, cfg.SoftRMSEMultiplier * baseline, cfg.SoftDurbinWatsonMin, cfg.SoftDurbinWatsonMax}
	hard := thresholds{cfg.HardAdjRSquaredMin, cfg.HardRMSEMultiplier * baseline, cfg.HardDurbinWatsonMin, cfg.HardDurbinWatsonMax}

	last := len(prices) - 1
	var segments []Segment
	for start := 0; start < last; {
		accepted := min(start+2, last)
		outliers := 0
		for end := accepted + 1; end <= last; end++ {
			fit := fitRange(prices, start, end)
			if !hard.pass(fit, baseline) {
				break
			}
			if !soft.pass(fit, baseline) {
				outliers++
				if outliers > cfg.MaxOutliers {
					break
				}
				continue
			}
			accepted = end
		}

		fit := fitRange(prices, start, accepted)
		segments = append(segments, Segment{
			Start:     start,
			End:       accepted,
			Slope:     fit.Slope,
			Intercept: fit.Intercept,
		})
		start = accepted
	}
	return segments, nil
}

type thresholds struct {
	adjR2Min float64
	rmseMax  float64
	dwMin    float64
	dwMax    float64
}

func (t thresholds) pass(fit stats.RegressionFit, baseline float64) bool {
	if fit.AdjRSquared < t.adjR2Min {
		return false
	}
	// a flat series has no step scale to compare against
	if baseline > 0 && fit.RMSE > t.rmseMax {
		return false
	}
	return fit.DurbinWatson >= t.dwMin && fit.DurbinWatson <= t.dwMax
}

func fitRange(prices []float64, start, end int) stats.RegressionFit {
	return stats.FitLine(indexes(start, end+1), prices[start:end+1])
}

func meanAbsoluteStep(prices []float64) float64 {
	var sum float64
	for i := 1; i < len(prices); i++ {
		sum += math.Abs(prices[i] - prices[i-1])
	}
	return sum / float64(len(prices)-1)
}
