package indicators

import "fmt"

// requireWindow rejects an empty single-form input
func requireWindow(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s: empty window", ErrInvalidInput, name)
	}
	return nil
}

// requireMinLength rejects windows shorter than minLen
func requireMinLength(name string, n, minLen int) error {
	if n < minLen {
		return fmt.Errorf("%w: %s needs at least %d values, got %d", ErrInvalidInput, name, minLen, n)
	}
	return nil
}

// requirePeriod validates a bulk period against the series length
func requirePeriod(name string, n, period int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s: empty series", ErrInvalidInput, name)
	}
	if period < 1 {
		return fmt.Errorf("%w: %s: period must be positive, got %d", ErrInvalidInput, name, period)
	}
	if period > n {
		return fmt.Errorf("%w: %s: period %d, series length %d", ErrPeriodExceedsLength, name, period, n)
	}
	return nil
}

// requireShortPeriod validates the short period of a short/long pair
func requireShortPeriod(name string, shortPeriod, longPeriod int) error {
	if shortPeriod < 1 {
		return fmt.Errorf("%w: %s: short period must be positive, got %d", ErrInvalidInput, name, shortPeriod)
	}
	if shortPeriod > longPeriod {
		return fmt.Errorf("%w: %s: short period %d, long period %d", ErrPeriodExceedsLength, name, shortPeriod, longPeriod)
	}
	return nil
}

// requireSameLength checks that all channels are index-aligned
func requireSameLength(name string, channels ...[]float64) error {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	for _, c := range channels[1:] {
		if len(c) != n {
			return fmt.Errorf("%w: %s: %d vs %d", ErrMismatchedLengths, name, n, len(c))
		}
	}
	return nil
}

// rolling calls fn for every window start of a series of length n and
// collects the results in order
func rolling[T any](n, period int, fn func(start int) (T, error)) ([]T, error) {
	out := make([]T, 0, n-period+1)
	for start := 0; start+period <= n; start++ {
		v, err := fn(start)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Band is a lower / middle / upper triple used by envelopes, bands and channels
type Band struct {
	Lower  float64
	Middle float64
	Upper  float64
}
