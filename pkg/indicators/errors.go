package indicators

import "errors"

var (
	// ErrInvalidInput is returned for empty windows, non-positive periods,
	// unknown strategy kinds and out-of-range parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrPeriodExceedsLength is returned when a bulk period is longer than the series
	ErrPeriodExceedsLength = errors.New("period exceeds series length")

	// ErrDivisionByZero is returned when a ratio the indicator depends on is undefined
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMismatchedLengths is returned when aligned input channels differ in length
	ErrMismatchedLengths = errors.New("mismatched input lengths")

	// ErrIndicatorTypeNotFound is returned when an indicator type is not registered
	ErrIndicatorTypeNotFound = errors.New("indicator type not found")
)
