package realstats

import (
	"errors"
	"math"
)

// Defaults used by callers that have no opinion of their own.
const (
	DefaultInterval = 1.0 // Integrate: unit width turns the sum into a plain total
	DefaultAlpha    = 0.3 // MovingAverage: smoothing factor
)

// ErrEmptySeries is returned by the Strict variants when asked to
// aggregate an empty series. The plain aggregate functions instead
// return 0 by convention; callers that need to distinguish "no data"
// from "aggregate happens to be zero" use the Strict forms.
var ErrEmptySeries = errors.New("realstats: empty series")

// Mean returns the arithmetic mean of the series rounded to 4 decimal
// places, or 0 for an empty series. Plain left-to-right summation; the
// magnitudes involved (single-user session metrics) do not warrant
// compensated accumulation.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return roundTo(sum/float64(len(series)), resultPrecision)
}

// Supremum returns the maximum element of the series, or 0 for an empty
// series. Strict comparison: the first occurrence of a tied maximum is
// kept. The result is an input element and is not re-rounded.
func Supremum(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sup := series[0]
	for _, v := range series[1:] {
		if v > sup {
			sup = v
		}
	}
	return sup
}

// Infimum returns the minimum element of the series, or 0 for an empty
// series. Strict comparison, first occurrence kept, no re-rounding.
func Infimum(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	inf := series[0]
	for _, v := range series[1:] {
		if v < inf {
			inf = v
		}
	}
	return inf
}

// Variance returns the population variance (squared deviations averaged
// over N, not N-1) rounded to 4 decimal places, or 0 for an empty series.
func Variance(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	mean := Mean(series)
	sumSq := 0.0
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	return roundTo(sumSq/float64(len(series)), resultPrecision)
}

// StdDev returns the non-negative square root of the population
// variance, rounded to 4 decimal places. Variance is recomputed
// internally on every call; callers never pass one in, and at
// single-user session counts the duplicated mean pass is irrelevant.
func StdDev(series []float64) float64 {
	return roundTo(math.Sqrt(Variance(series)), resultPrecision)
}

// ZScore returns (x − mean) / stdDev rounded to 4 decimal places. A zero
// standard deviation yields 0 rather than a non-finite result.
func ZScore(x, mean, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	return roundTo((x-mean)/stdDev, resultPrecision)
}

// Integrate returns the left-endpoint Riemann sum Σ(xi × interval)
// rounded to 4 decimal places, or 0 for an empty series. With
// DefaultInterval this is a plain total, which is how the dashboard
// sums hours across sessions.
func Integrate(series []float64, interval float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v * interval
	}
	return roundTo(sum, resultPrecision)
}

// Normalize maps v into [0, 1] relative to the inclusive range
// [min, max]. A degenerate range (max = min) yields 0. The result is
// clamped but deliberately NOT rounded; callers format it themselves.
func Normalize(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return Clamp((v-min)/(max-min), 0, 1)
}

// MovingAverage returns one step of exponential smoothing,
// (1−α)×previous + α×observation, rounded to 4 decimal places. The
// package keeps no state: the caller owns the running value. Alpha is
// expected in (0,1) but is applied as given, not validated.
func MovingAverage(previous, observation, alpha float64) float64 {
	return roundTo((1-alpha)*previous+alpha*observation, resultPrecision)
}

// Strict variants: identical arithmetic, but an empty series is
// reported instead of silently collapsing to 0.

func MeanStrict(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return Mean(series), nil
}

func SupremumStrict(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return Supremum(series), nil
}

func InfimumStrict(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return Infimum(series), nil
}

func VarianceStrict(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return Variance(series), nil
}

func StdDevStrict(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return StdDev(series), nil
}

func IntegrateStrict(series []float64, interval float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return Integrate(series, interval), nil
}
