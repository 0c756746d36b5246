package indicators

import (
	"fmt"
	"math"
)

// DirectionalMovement is one reading of the directional movement system
type DirectionalMovement struct {
	PositiveDI float64
	NegativeDI float64
	ADX        float64
	ADXR       float64
}

// DirectionalMovementSystemBulk (Wilder's DMI / ADX / ADXR) measures trend
// direction and strength
//
// Formula:
// +DM = High - High_prev if it exceeds Low_prev - Low and is positive, else 0
// -DM = Low_prev - Low if it exceeds High - High_prev and is positive, else 0
// TR  = TrueRange(Close_prev, High, Low)
// +DI = 100 × MA(+DM) / MA(TR), -DI = 100 × MA(-DM) / MA(TR)
// DX  = 100 × |+DI - -DI| / (+DI + -DI)
// ADX = MA(DX)
// ADXR = (ADX + ADX from period-1 readings earlier) / 2
//
// All averages use kind over period values. Zero denominators read 0.
// The output has len - 3×period + 2 values and element k belongs to bar
// k + 3×period - 2.
func DirectionalMovementSystemBulk(high, low, close []float64, period int, kind MovingAverageKind) ([]DirectionalMovement, error) {
	if err := requireSameLength("directional movement system", high, low, close); err != nil {
		return nil, err
	}
	if err := requireWindow("directional movement system", len(close)); err != nil {
		return nil, err
	}
	if period < 1 {
		return nil, fmt.Errorf("%w: directional movement system: period must be positive, got %d", ErrInvalidInput, period)
	}
	if need := 3*period - 1; len(close) < need || len(close) < 2 {
		return nil, fmt.Errorf("%w: directional movement system needs %d bars for period %d, got %d",
			ErrPeriodExceedsLength, max(need, 2), period, len(close))
	}

	m := len(close) - 1
	plusDM := make([]float64, m)
	minusDM := make([]float64, m)
	tr := make([]float64, m)
	for i := 1; i < len(close); i++ {
		up := high[i] - high[i-1]
		down := low[i-1] - low[i]
		if up > down && up > 0 {
			plusDM[i-1] = up
		}
		if down > up && down > 0 {
			minusDM[i-1] = down
		}
		tr[i-1] = TrueRange(close[i-1], high[i], low[i])
	}

	smPlus, err := MovingAverageBulk(plusDM, kind, period)
	if err != nil {
		return nil, fmt.Errorf("directional movement system: %w", err)
	}
	smMinus, err := MovingAverageBulk(minusDM, kind, period)
	if err != nil {
		return nil, fmt.Errorf("directional movement system: %w", err)
	}
	smTR, err := MovingAverageBulk(tr, kind, period)
	if err != nil {
		return nil, fmt.Errorf("directional movement system: %w", err)
	}

	plusDI := make([]float64, len(smTR))
	minusDI := make([]float64, len(smTR))
	dx := make([]float64, len(smTR))
	for i := range smTR {
		plusDI[i] = ratio(100*smPlus[i], smTR[i])
		minusDI[i] = ratio(100*smMinus[i], smTR[i])
		dx[i] = ratio(100*math.Abs(plusDI[i]-minusDI[i]), plusDI[i]+minusDI[i])
	}

	adx, err := MovingAverageBulk(dx, kind, period)
	if err != nil {
		return nil, fmt.Errorf("directional movement system: %w", err)
	}

	lag := period - 1
	out := make([]DirectionalMovement, 0, len(adx)-lag)
	for a := lag; a < len(adx); a++ {
		di := a + period - 1
		out = append(out, DirectionalMovement{
			PositiveDI: plusDI[di],
			NegativeDI: minusDI[di],
			ADX:        adx[a],
			ADXR:       (adx[a] + adx[a-lag]) / 2,
		})
	}
	return out, nil
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
