// Package charttrends finds peaks, valleys and linear trends in price series
package charttrends

import (
	"fmt"

	"github.com/yourusername/quantlink-ti/pkg/indicators"
	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// Point is a price and the series index it was taken from
type Point struct {
	Value float64
	Index int
}

// Trend is a fitted line price = Slope × index + Intercept
type Trend struct {
	Slope     float64
	Intercept float64
}

// Peaks returns the local highs of prices
//
// Every window of length period contributes its maximum (the most recent
// one on ties). A peak within closestNeighbor bars of the previous peak
// replaces it only when higher, so clustered highs collapse into one point.
func Peaks(prices []float64, period, closestNeighbor int) ([]Point, error) {
	return extrema("peaks", prices, period, closestNeighbor, stats.ArgMax, func(a, b float64) bool { return a > b })
}

// Valleys returns the local lows of prices, mirroring Peaks
func Valleys(prices []float64, period, closestNeighbor int) ([]Point, error) {
	return extrema("valleys", prices, period, closestNeighbor, stats.ArgMin, func(a, b float64) bool { return a < b })
}

// PeakTrend fits a line through the peaks of prices (closest neighbour 1)
func PeakTrend(prices []float64, period int) (Trend, error) {
	peaks, err := Peaks(prices, period, 1)
	if err != nil {
		return Trend{}, err
	}
	return fitPoints("peak trend", peaks)
}

// ValleyTrend fits a line through the valleys of prices (closest neighbour 1)
func ValleyTrend(prices []float64, period int) (Trend, error) {
	valleys, err := Valleys(prices, period, 1)
	if err != nil {
		return Trend{}, err
	}
	return fitPoints("valley trend", valleys)
}

// OverallTrend fits a line through every price against its index
func OverallTrend(prices []float64) (Trend, error) {
	if len(prices) < 2 {
		return Trend{}, fmt.Errorf("%w: overall trend needs at least 2 prices, got %d", indicators.ErrInvalidInput, len(prices))
	}
	slope, intercept := stats.LinearRegression(indexes(0, len(prices)), prices)
	return Trend{Slope: slope, Intercept: intercept}, nil
}

func extrema(name string, prices []float64, period, closestNeighbor int, argExtreme func([]float64) int, better func(a, b float64) bool) ([]Point, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: %s: empty series", indicators.ErrInvalidInput, name)
	}
	if period < 1 || closestNeighbor < 0 {
		return nil, fmt.Errorf("%w: %s: period %d, closest neighbor %d", indicators.ErrInvalidInput, name, period, closestNeighbor)
	}
	if period > len(prices) {
		return nil, fmt.Errorf("%w: %s: period %d, series length %d", indicators.ErrPeriodExceedsLength, name, period, len(prices))
	}

	var points []Point
	for start := 0; start+period <= len(prices); start++ {
		idx := start + argExtreme(prices[start:start+period])
		p := Point{Value: prices[idx], Index: idx}

		if n := len(points); n > 0 {
			last := points[n-1]
			if idx == last.Index {
				continue
			}
			if idx-last.Index <= closestNeighbor {
				if better(p.Value, last.Value) {
					points[n-1] = p
				}
				continue
			}
		}
		points = append(points, p)
	}
	return points, nil
}

func fitPoints(name string, points []Point) (Trend, error) {
	if len(points) < 2 {
		return Trend{}, fmt.Errorf("%w: %s needs at least 2 points, found %d", indicators.ErrInvalidInput, name, len(points))
	}
	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = float64(p.Index)
		y[i] = p.Value
	}
	slope, intercept := stats.LinearRegression(x, y)
	return Trend{Slope: slope, Intercept: intercept}, nil
}

func indexes(from, to int) []float64 {
	x := make([]float64, 0, to-from)
	for i := from; i < to; i++ {
		x = append(x, float64(i))
	}
	return x
}
