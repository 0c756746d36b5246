package indicators

import (
	"fmt"
	"strings"
)

// MovingAverageKind selects how a window is averaged
type MovingAverageKind int

const (
	// MASimple is the arithmetic mean
	MASimple MovingAverageKind = iota
	// MASmoothed weights by (1-α)^k with α = 1/n, k = 0 for the newest value
	MASmoothed
	// MAExponential weights by (1-α)^k with α = 2/(n+1)
	MAExponential
	// MAMedian is the window median
	MAMedian
	// MAMode is the most frequent value (ties -> smallest, all distinct -> mean)
	MAMode
)

var movingAverageNames = map[MovingAverageKind]string{
	MASimple:      "simple",
	MASmoothed:    "smoothed",
	MAExponential: "exponential",
	MAMedian:      "median",
	MAMode:        "mode",
}

func (k MovingAverageKind) String() string {
	if name, ok := movingAverageNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MovingAverageKind(%d)", int(k))
}

// ParseMovingAverageKind converts a name such as "exponential" to its kind
func ParseMovingAverageKind(s string) (MovingAverageKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range movingAverageNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown moving average kind %q", ErrInvalidInput, s)
}

// DeviationKind selects the dispersion measure of a window
type DeviationKind int

const (
	// DevStandard is the population standard deviation
	DevStandard DeviationKind = iota
	// DevMean is the mean absolute deviation about the mean
	DevMean
	// DevMedian is the median absolute deviation about the median
	DevMedian
	// DevMode is the mean absolute deviation about the mode
	DevMode
	// DevUlcer is the ulcer index (RMS of percentage drawdowns)
	DevUlcer
)

var deviationNames = map[DeviationKind]string{
	DevStandard: "standard",
	DevMean:     "mean",
	DevMedian:   "median",
	DevMode:     "mode",
	DevUlcer:    "ulcer",
}

func (k DeviationKind) String() string {
	if name, ok := deviationNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DeviationKind(%d)", int(k))
}

// ParseDeviationKind converts a name such as "ulcer" to its kind
func ParseDeviationKind(s string) (DeviationKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range deviationNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown deviation kind %q", ErrInvalidInput, s)
}

// Position is the side a parabolic SAR run starts on
type Position int

const (
	Long Position = iota
	Short
)

func (p Position) String() string {
	switch p {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition converts "long" or "short" to a Position
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return 0, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, s)
}
