package indicators

import (
	"fmt"

	"github.com/yourusername/quantlink-ti/pkg/stats"
)

// IchimokuCloud holds the five Ichimoku lines for one window
type IchimokuCloud struct {
	LeadingSpanA   float64
	LeadingSpanB   float64
	BaseLine       float64
	ConversionLine float64
	LaggedPrice    float64
}

// Ichimoku computes the Ichimoku Kinko Hyo lines at the end of the window
//
// Formula:
// Conversion = (max High + min Low) / 2 over the last conversionPeriod bars
// Base       = (max High + min Low) / 2 over the last basePeriod bars
// Span A     = (Conversion + Base) / 2
// Span B     = (max High + min Low) / 2 over the last spanBPeriod bars
// Lagged     = Close[len - basePeriod]
//
// Span A and Span B are computed at the window end and are plotted
// basePeriod bars ahead; the lagged price is the close basePeriod-1 bars
// back. Typical periods are 9 / 26 / 52.
func Ichimoku(high, low, close []float64, conversionPeriod, basePeriod, spanBPeriod int) (IchimokuCloud, error) {
	if err := requireSameLength("ichimoku", high, low, close); err != nil {
		return IchimokuCloud{}, err
	}
	if conversionPeriod < 1 || basePeriod < 1 || spanBPeriod < 1 {
		return IchimokuCloud{}, fmt.Errorf("%w: ichimoku periods must be positive", ErrInvalidInput)
	}
	longest := max(conversionPeriod, basePeriod, spanBPeriod)
	if err := requirePeriod("ichimoku", len(high), longest); err != nil {
		return IchimokuCloud{}, err
	}

	n := len(high)
	conversion := midRange(high[n-conversionPeriod:], low[n-conversionPeriod:])
	base := midRange(high[n-basePeriod:], low[n-basePeriod:])

	return IchimokuCloud{
		LeadingSpanA:   (conversion + base) / 2,
		LeadingSpanB:   midRange(high[n-spanBPeriod:], low[n-spanBPeriod:]),
		BaseLine:       base,
		ConversionLine: conversion,
		LaggedPrice:    close[n-basePeriod],
	}, nil
}

// IchimokuBulk slides a window of max(conversion, base, spanB) bars
func IchimokuBulk(high, low, close []float64, conversionPeriod, basePeriod, spanBPeriod int) ([]IchimokuCloud, error) {
	if err := requireSameLength("ichimoku", high, low, close); err != nil {
		return nil, err
	}
	if conversionPeriod < 1 || basePeriod < 1 || spanBPeriod < 1 {
		return nil, fmt.Errorf("%w: ichimoku periods must be positive", ErrInvalidInput)
	}
	period := max(conversionPeriod, basePeriod, spanBPeriod)
	if err := requirePeriod("ichimoku", len(high), period); err != nil {
		return nil, err
	}
	return rolling(len(high), period, func(i int) (IchimokuCloud, error) {
		j := i + period
		return Ichimoku(high[i:j], low[i:j], close[i:j], conversionPeriod, basePeriod, spanBPeriod)
	})
}

func midRange(high, low []float64) float64 {
	return (stats.Max(high) + stats.Min(low)) / 2
}
