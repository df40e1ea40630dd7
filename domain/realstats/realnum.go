package realstats

import (
	"math"
)

// Decimal precision applied by the package. Scalar results carry
// valuePrecision digits; aggregate results carry resultPrecision digits.
const (
	valuePrecision  = 6
	resultPrecision = 4
)

// RealNumber is a validated, non-negative measured quantity (a duration,
// a score, an efficiency percentage). Despite the name it is not a
// general signed real: the domain of every metric in this system is
// non-negative, so negative candidates are rejected alongside NaN and
// the infinities. Once constructed it is never mutated, only replaced.
type RealNumber struct {
	Value  float64 `json:"value"`
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
}

// New validates a candidate measurement. Invalid candidates (NaN,
// infinite, negative) yield a zero-valued RealNumber with Valid=false
// and a reason; valid candidates are stored rounded to 6 decimal
// places, half away from zero.
func New(candidate float64) RealNumber {
	switch {
	case math.IsNaN(candidate):
		return RealNumber{Valid: false, Reason: "value is not a number"}
	case math.IsInf(candidate, 0):
		return RealNumber{Valid: false, Reason: "value is infinite"}
	case candidate < 0:
		return RealNumber{Valid: false, Reason: "value is negative"}
	}
	return RealNumber{Value: roundTo(candidate, valuePrecision), Valid: true}
}

// Clamp confines v to the inclusive range [min, max]. Bounds are assumed
// totally ordered; NaN behavior is unspecified, so validate candidates
// with New before calling ordering-sensitive functions.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// HoursToMinutes converts a duration expressed in hours to minutes,
// rounded to 4 decimal places.
func HoursToMinutes(hours float64) float64 {
	return roundTo(hours*60, resultPrecision)
}

// MinutesToHours converts a duration expressed in minutes to hours,
// rounded to 4 decimal places.
func MinutesToHours(minutes float64) float64 {
	return roundTo(minutes/60, resultPrecision)
}

// roundTo rounds x to the given number of decimal places, half away
// from zero. Implemented numerically rather than via a format/reparse
// round-trip so locale formatting can never leak into results.
func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
