package indicators

import "fmt"

// Positivity pairs a positivity reading with its moving-average signal line
type Positivity struct {
	Value  float64
	Signal float64
}

// PositivityIndicator is the opening gap from the previous close, in percent
//
// Formula: PI = 100 × (Open - Close_prev) / Close_prev
func PositivityIndicator(open, previousClose float64) (float64, error) {
	if previousClose == 0 {
		return 0, fmt.Errorf("%w: positivity indicator from zero close", ErrDivisionByZero)
	}
	return 100 * (open - previousClose) / previousClose, nil
}

// PositivityIndicatorBulk computes PI_t from open[t] and previousClose[t-1]
// (len-1 readings) and smooths them into a signal line over signalPeriod.
// Element k pairs the reading at the end of signal window k with the signal.
func PositivityIndicatorBulk(open, previousClose []float64, signalPeriod int, kind MovingAverageKind) ([]Positivity, error) {
	if err := requireSameLength("positivity indicator", open, previousClose); err != nil {
		return nil, err
	}
	if err := requireMinLength("positivity indicator", len(open), 2); err != nil {
		return nil, err
	}

	pi := make([]float64, len(open)-1)
	for t := 1; t < len(open); t++ {
		v, err := PositivityIndicator(open[t], previousClose[t-1])
		if err != nil {
			return nil, err
		}
		pi[t-1] = v
	}

	signal, err := MovingAverageBulk(pi, kind, signalPeriod)
	if err != nil {
		return nil, fmt.Errorf("positivity indicator: %w", err)
	}

	out := make([]Positivity, len(signal))
	for k := range signal {
		out[k] = Positivity{Value: pi[k+signalPeriod-1], Signal: signal[k]}
	}
	return out, nil
}
