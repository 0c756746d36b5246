package indicators

import (
	"fmt"
	"math"
)

// LongParabolicTimePriceSystem advances the stop of a long run
//
// Formula:
// SAR = min(SAR_prev + AF × (EP - SAR_prev), low)
//
// low is the level the stop may not rise above (the prior lows).
func LongParabolicTimePriceSystem(previousSAR, extremePoint, accelerationFactor, low float64) float64 {
	return math.Min(previousSAR+accelerationFactor*(extremePoint-previousSAR), low)
}

// ShortParabolicTimePriceSystem advances the stop of a short run
//
// Formula:
// SAR = max(SAR_prev + AF × (EP - SAR_prev), high)
func ShortParabolicTimePriceSystem(previousSAR, extremePoint, accelerationFactor, high float64) float64 {
	return math.Max(previousSAR+accelerationFactor*(extremePoint-previousSAR), high)
}

// ParabolicTimePriceSystemBulk (Parabolic SAR, stop and reverse) runs the
// stop over every bar, starting on the given side
//
// Rules:
//   - previousSAR 0 starts the stop at the first bar's low (long) or high (short)
//   - the stop never passes the prior two bars' lows (long) or highs (short)
//   - AF starts at afStart and grows by afStep, up to afMax, on every new extreme
//   - price crossing the stop reverses the run: the stop jumps to the extreme
//     point, the extreme point and AF reset
//
// The output has one value per bar. Only the stop carries over through
// previousSAR: a continuation call restarts the extreme point at the first
// bar and AF at afStart, so splitting a series does not reproduce one long
// call.
func ParabolicTimePriceSystemBulk(high, low []float64, afStart, afStep, afMax float64, position Position, previousSAR float64) ([]float64, error) {
	if err := requireWindow("parabolic sar", len(high)); err != nil {
		return nil, err
	}
	if err := requireSameLength("parabolic sar", high, low); err != nil {
		return nil, err
	}
	if afStart <= 0 || afStep < 0 || afMax < afStart {
		return nil, fmt.Errorf("%w: parabolic sar acceleration %v/%v/%v", ErrInvalidInput, afStart, afStep, afMax)
	}
	if position != Long && position != Short {
		return nil, fmt.Errorf("%w: parabolic sar position %d", ErrInvalidInput, int(position))
	}

	out := make([]float64, len(high))
	long := position == Long
	af := afStart

	var sar, ep float64
	if long {
		ep = high[0]
		sar = low[0]
		if previousSAR != 0 {
			sar = LongParabolicTimePriceSystem(previousSAR, ep, af, low[0])
		}
	} else {
		ep = low[0]
		sar = high[0]
		if previousSAR != 0 {
			sar = ShortParabolicTimePriceSystem(previousSAR, ep, af, high[0])
		}
	}
	out[0] = sar

	for t := 1; t < len(high); t++ {
		if long {
			limit := low[t-1]
			if t >= 2 {
				limit = math.Min(limit, low[t-2])
			}
			sar = LongParabolicTimePriceSystem(sar, ep, af, limit)

			if low[t] < sar {
				// reverse to short
				long = false
				sar = math.Max(ep, high[t])
				ep = low[t]
				af = afStart
			} else if high[t] > ep {
				ep = high[t]
				af = math.Min(af+afStep, afMax)
			}
		} else {
			limit := high[t-1]
			if t >= 2 {
				limit = math.Max(limit, high[t-2])
			}
			sar = ShortParabolicTimePriceSystem(sar, ep, af, limit)

			if high[t] > sar {
				// reverse to long
				long = true
				sar = math.Min(ep, low[t])
				ep = high[t]
				af = afStart
			} else if low[t] < ep {
				ep = low[t]
				af = math.Min(af+afStep, afMax)
			}
		}
		out[t] = sar
	}
	return out, nil
}
