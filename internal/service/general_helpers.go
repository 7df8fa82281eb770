package service

import "math"

// RoundingPrecision is the display precision for percentage values: two
// decimal places.
const RoundingPrecision = 100

// round rounds a value to two decimal places. Aggregation keeps exact sums;
// rounding happens only here, at the presentation boundary, when assembling
// view cells.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
