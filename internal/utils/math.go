package utils

import "math"

// Float64Source is anything that yields uniform floats in [0,1)
type Float64Source interface {
	Float64() float64
}

// Uniform maps a draw from src onto [lo, hi)
func Uniform(src Float64Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// RoundInt rounds half away from zero and converts to int
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// DiminishingReturns calculates a value with diminishing returns.
// value: The input value.
// scale: The value at which the output is 50% of the maximum possible output (asymptote).
// formula: value / (value + scale) -> returns a factor between 0 and 1
// To get a result scaled to a max, multiply the result by max.
func DiminishingReturns(value, scale float64) float64 {
	if value < 0 {
		return 0
	}
	return value / (value + scale)
}
