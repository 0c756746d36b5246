package indicators

import "fmt"

// Investment is the value of a position and its percentage return
type Investment struct {
	Value         float64
	PercentReturn float64
}

// ReturnOnInvestment values an investment bought at start and marked at end
//
// Formula:
// Return = (End - Start) / Start
// Value  = Investment × (1 + Return)
func ReturnOnInvestment(start, end, investment float64) (Investment, error) {
	if start == 0 {
		return Investment{}, fmt.Errorf("%w: return on investment from zero price", ErrDivisionByZero)
	}
	r := (end - start) / start
	return Investment{
		Value:         investment + investment*r,
		PercentReturn: 100 * r,
	}, nil
}

// ReturnOnInvestmentBulk compounds the investment bar by bar (len-1 outputs);
// every step reinvests the value of the step before
func ReturnOnInvestmentBulk(prices []float64, investment float64) ([]Investment, error) {
	if err := requireMinLength("return on investment", len(prices), 2); err != nil {
		return nil, err
	}

	out := make([]Investment, len(prices)-1)
	value := investment
	for i := 1; i < len(prices); i++ {
		v, err := ReturnOnInvestment(prices[i-1], prices[i], value)
		if err != nil {
			return nil, err
		}
		out[i-1] = v
		value = v.Value
	}
	return out, nil
}
