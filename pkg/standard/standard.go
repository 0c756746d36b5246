// Package standard provides the textbook parameterisations of common
// indicators on top of package indicators
package standard

import (
	"fmt"

	"github.com/yourusername/quantlink-ti/pkg/indicators"
)

const (
	// BollingerPeriod is the window of BollingerBands
	BollingerPeriod = 20
	// BollingerMultiplier is the band width in standard deviations
	BollingerMultiplier = 2.0

	// MACDShortPeriod, MACDLongPeriod and MACDSignalPeriod define MACD(12, 26, 9)
	MACDShortPeriod  = 12
	MACDLongPeriod   = 26
	MACDSignalPeriod = 9
	// MACDPeriod is the window one MACD reading needs
	MACDPeriod = MACDLongPeriod + MACDSignalPeriod - 1

	// RSIPeriod is the window of RSI
	RSIPeriod = 14
)

// SimpleMovingAverage is the arithmetic mean of the window
func SimpleMovingAverage(prices []float64) (float64, error) {
	return indicators.MovingAverage(prices, indicators.MASimple)
}

// SimpleMovingAverageBulk applies SimpleMovingAverage to every window of length period
func SimpleMovingAverageBulk(prices []float64, period int) ([]float64, error) {
	return indicators.MovingAverageBulk(prices, indicators.MASimple, period)
}

// SmoothedMovingAverage is Wilder's smoothing (α = 1/n)
func SmoothedMovingAverage(prices []float64) (float64, error) {
	return indicators.MovingAverage(prices, indicators.MASmoothed)
}

// SmoothedMovingAverageBulk applies SmoothedMovingAverage to every window of length period
func SmoothedMovingAverageBulk(prices []float64, period int) ([]float64, error) {
	return indicators.MovingAverageBulk(prices, indicators.MASmoothed, period)
}

// ExponentialMovingAverage weights with α = 2/(n+1)
func ExponentialMovingAverage(prices []float64) (float64, error) {
	return indicators.MovingAverage(prices, indicators.MAExponential)
}

// ExponentialMovingAverageBulk applies ExponentialMovingAverage to every window of length period
func ExponentialMovingAverageBulk(prices []float64, period int) ([]float64, error) {
	return indicators.MovingAverageBulk(prices, indicators.MAExponential, period)
}

// BollingerBands is SMA(20) ± 2 standard deviations; the window must hold
// exactly 20 prices
func BollingerBands(prices []float64) (indicators.Band, error) {
	if err := exactly("bollinger bands", prices, BollingerPeriod); err != nil {
		return indicators.Band{}, err
	}
	return indicators.MovingConstantBands(prices, indicators.MASimple, indicators.DevStandard, BollingerMultiplier)
}

// BollingerBandsBulk applies BollingerBands to every 20-price window
func BollingerBandsBulk(prices []float64) ([]indicators.Band, error) {
	return indicators.MovingConstantBandsBulk(prices, indicators.MASimple, indicators.DevStandard, BollingerMultiplier, BollingerPeriod)
}

// MACD is one MACD(12, 26, 9) reading
type MACD struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACDReading computes MACD(12, 26, 9) with exponential averages; the
// window must hold exactly 34 prices (nine 26-price MACD windows)
func MACDReading(prices []float64) (MACD, error) {
	if err := exactly("macd", prices, MACDPeriod); err != nil {
		return MACD{}, err
	}

	lines, err := indicators.MACDLineBulk(prices, MACDShortPeriod, indicators.MAExponential, MACDLongPeriod, indicators.MAExponential)
	if err != nil {
		return MACD{}, err
	}
	signal, err := indicators.SignalLine(lines, indicators.MAExponential)
	if err != nil {
		return MACD{}, err
	}
	macd := lines[len(lines)-1]
	return MACD{MACD: macd, Signal: signal, Histogram: macd - signal}, nil
}

// MACDBulk applies MACDReading to every 34-price window
func MACDBulk(prices []float64) ([]MACD, error) {
	if len(prices) < MACDPeriod {
		return nil, fmt.Errorf("%w: macd needs %d prices, got %d", indicators.ErrPeriodExceedsLength, MACDPeriod, len(prices))
	}

	out := make([]MACD, 0, len(prices)-MACDPeriod+1)
	for i := 0; i+MACDPeriod <= len(prices); i++ {
		v, err := MACDReading(prices[i : i+MACDPeriod])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// RSI is the 14-period RSI with Wilder smoothing; the window must hold
// exactly 14 prices
func RSI(prices []float64) (float64, error) {
	if err := exactly("rsi", prices, RSIPeriod); err != nil {
		return 0, err
	}
	return indicators.RSI(prices, indicators.MASmoothed)
}

// RSIBulk applies RSI to every 14-price window
func RSIBulk(prices []float64) ([]float64, error) {
	return indicators.RSIBulk(prices, indicators.MASmoothed, RSIPeriod)
}

func exactly(name string, prices []float64, n int) error {
	if len(prices) != n {
		return fmt.Errorf("%w: %s needs exactly %d prices, got %d", indicators.ErrInvalidInput, name, n, len(prices))
	}
	return nil
}
