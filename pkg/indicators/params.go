package indicators

import (
	"fmt"
	"math"
)

// Params holds decoded indicator parameters (from YAML or JSON)
type Params map[string]interface{}

// Int reads an integer parameter, falling back to def when absent
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: parameter %q must be an integer, got %v", ErrInvalidInput, key, n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: parameter %q must be a number, got %T", ErrInvalidInput, key, v)
}

// Float reads a numeric parameter, falling back to def when absent
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: parameter %q must be a number, got %T", ErrInvalidInput, key, v)
}

// MovingAverage reads a moving average kind by name
func (p Params) MovingAverage(key string, def MovingAverageKind) (MovingAverageKind, error) {
	s, ok, err := p.str(key)
	if err != nil || !ok {
		return def, err
	}
	return ParseMovingAverageKind(s)
}

// Deviation reads a deviation kind by name
func (p Params) Deviation(key string, def DeviationKind) (DeviationKind, error) {
	s, ok, err := p.str(key)
	if err != nil || !ok {
		return def, err
	}
	return ParseDeviationKind(s)
}

// Position reads "long" or "short"
func (p Params) Position(key string, def Position) (Position, error) {
	s, ok, err := p.str(key)
	if err != nil || !ok {
		return def, err
	}
	return ParsePosition(s)
}

func (p Params) str(key string) (string, bool, error) {
	v, ok := p[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: parameter %q must be a string, got %T", ErrInvalidInput, key, v)
	}
	return s, true, nil
}

// paramReader collects the first parameter error so factories can read
// several values before checking once
type paramReader struct {
	p   Params
	err error
}

func (r *paramReader) int(key string, def int) int {
	v, err := r.p.Int(key, def)
	r.keep(err)
	return v
}

func (r *paramReader) float(key string, def float64) float64 {
	v, err := r.p.Float(key, def)
	r.keep(err)
	return v
}

func (r *paramReader) ma(key string, def MovingAverageKind) MovingAverageKind {
	v, err := r.p.MovingAverage(key, def)
	r.keep(err)
	return v
}

func (r *paramReader) dev(key string, def DeviationKind) DeviationKind {
	v, err := r.p.Deviation(key, def)
	r.keep(err)
	return v
}

func (r *paramReader) position(key string, def Position) Position {
	v, err := r.p.Position(key, def)
	r.keep(err)
	return v
}

func (r *paramReader) keep(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}
