package realstats

import (
	"errors"
	"math"
	"testing"

	montanaflynn "github.com/montanaflynn/stats"
)

// The canonical scenario: one week's session durations in hours.
var weekDurations = []float64{1.5, 2.0, 0.5, 3.0}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{name: "week of durations", series: weekDurations, want: 1.75},
		{name: "single element", series: []float64{4.2}, want: 4.2},
		{name: "empty series defaults to zero", series: nil, want: 0},
		{name: "rounds to four decimals", series: []float64{1, 1, 1}, want: 1},
		{name: "repeating fraction", series: []float64{1, 0, 0}, want: 0.3333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.series); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.series, got, tt.want)
			}
		})
	}
}

func TestSupremumInfimum(t *testing.T) {
	if got := Supremum(weekDurations); got != 3.0 {
		t.Errorf("Supremum = %v, want 3.0", got)
	}
	if got := Infimum(weekDurations); got != 0.5 {
		t.Errorf("Infimum = %v, want 0.5", got)
	}
	if got := Supremum(nil); got != 0 {
		t.Errorf("Supremum(empty) = %v, want 0", got)
	}
	if got := Infimum(nil); got != 0 {
		t.Errorf("Infimum(empty) = %v, want 0", got)
	}

	// Ties keep the first occurrence; the value is identical either way.
	tied := []float64{2.0, 3.0, 3.0, 1.0}
	if got := Supremum(tied); got != 3.0 {
		t.Errorf("Supremum(tied) = %v, want 3.0", got)
	}
}

func TestVarianceStdDev(t *testing.T) {
	if got := Variance(weekDurations); got != 0.8125 {
		t.Errorf("Variance = %v, want 0.8125", got)
	}
	if got := StdDev(weekDurations); got != 0.9014 {
		t.Errorf("StdDev = %v, want 0.9014", got)
	}
	if got := Variance(nil); got != 0 {
		t.Errorf("Variance(empty) = %v, want 0", got)
	}
	if got := StdDev(nil); got != 0 {
		t.Errorf("StdDev(empty) = %v, want 0", got)
	}
	if got := Variance([]float64{5}); got != 0 {
		t.Errorf("Variance(single) = %v, want 0", got)
	}
}

func TestStdDevMatchesVariance(t *testing.T) {
	series := [][]float64{
		weekDurations,
		{7, 7, 7},
		{0.1, 0.2, 0.9, 4.5, 2.2},
	}
	for _, s := range series {
		want := roundTo(math.Sqrt(Variance(s)), resultPrecision)
		if got := StdDev(s); got != want {
			t.Errorf("StdDev(%v) = %v, want sqrt(variance) = %v", s, got, want)
		}
	}
}

func TestZScore(t *testing.T) {
	if got := ZScore(3.0, 1.75, 0.9014); got != 1.3867 {
		t.Errorf("ZScore = %v, want 1.3867", got)
	}
	// Zero sigma is guarded, never NaN or Inf.
	if got := ZScore(42, 10, 0); got != 0 {
		t.Errorf("ZScore with zero stddev = %v, want 0", got)
	}
	if got := ZScore(1.75, 1.75, 0.9014); got != 0 {
		t.Errorf("ZScore at the mean = %v, want 0", got)
	}
}

func TestIntegrate(t *testing.T) {
	if got := Integrate(weekDurations, DefaultInterval); got != 7.0 {
		t.Errorf("Integrate(interval=1) = %v, want 7.0", got)
	}
	if got := Integrate(weekDurations, 0.5); got != 3.5 {
		t.Errorf("Integrate(interval=0.5) = %v, want 3.5", got)
	}
	if got := Integrate(nil, DefaultInterval); got != 0 {
		t.Errorf("Integrate(empty) = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 0.5},
		{0, 0, 10, 0},
		{10, 0, 10, 1},
		{15, 0, 10, 1},   // clamped high
		{-5, 0, 10, 0},   // clamped low
		{3, 3, 3, 0},     // degenerate range
		{100, 42, 42, 0}, // degenerate range, v outside
	}

	for _, tt := range tests {
		if got := Normalize(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Normalize(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	if got := MovingAverage(5.0, 8.0, DefaultAlpha); got != 5.9 {
		t.Errorf("MovingAverage(5, 8, 0.3) = %v, want 5.9", got)
	}
	// Alpha extremes are applied as given, not clamped.
	if got := MovingAverage(5.0, 8.0, 1); got != 8 {
		t.Errorf("MovingAverage(alpha=1) = %v, want 8", got)
	}
	if got := MovingAverage(5.0, 8.0, 0); got != 5 {
		t.Errorf("MovingAverage(alpha=0) = %v, want 5", got)
	}
}

// TestOrderingInvariant verifies Infimum ≤ Mean ≤ Supremum on non-empty
// series of dashboard-typical magnitudes.
func TestOrderingInvariant(t *testing.T) {
	series := [][]float64{
		weekDurations,
		{0.25},
		{9.5, 0.5, 3.25, 3.25, 7.75, 1.0},
		{100, 42.42, 7.007},
	}

	for _, s := range series {
		inf, mean, sup := Infimum(s), Mean(s), Supremum(s)
		if inf > mean || mean > sup {
			t.Errorf("ordering violated for %v: inf=%v mean=%v sup=%v", s, inf, mean, sup)
		}
	}
}

// TestAgainstReferenceLibrary cross-checks the hand-computed aggregates
// against an independent implementation, within rounding tolerance.
func TestAgainstReferenceLibrary(t *testing.T) {
	series := []float64{1.5, 2.0, 0.5, 3.0, 2.25, 0.75, 4.0}

	refMean, err := montanaflynn.Mean(series)
	if err != nil {
		t.Fatalf("reference mean: %v", err)
	}
	refVar, err := montanaflynn.PopulationVariance(series)
	if err != nil {
		t.Fatalf("reference variance: %v", err)
	}

	if got := Mean(series); math.Abs(got-refMean) > 0.00005 {
		t.Errorf("Mean = %v, reference = %v", got, refMean)
	}
	if got := Variance(series); math.Abs(got-refVar) > 0.00005 {
		t.Errorf("Variance = %v, reference = %v", got, refVar)
	}
}

func TestStrictVariants(t *testing.T) {
	if _, err := MeanStrict(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("MeanStrict(empty) error = %v, want ErrEmptySeries", err)
	}
	if _, err := SupremumStrict(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("SupremumStrict(empty) error = %v, want ErrEmptySeries", err)
	}
	if _, err := InfimumStrict(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("InfimumStrict(empty) error = %v, want ErrEmptySeries", err)
	}
	if _, err := VarianceStrict(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("VarianceStrict(empty) error = %v, want ErrEmptySeries", err)
	}
	if _, err := StdDevStrict(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("StdDevStrict(empty) error = %v, want ErrEmptySeries", err)
	}
	if _, err := IntegrateStrict(nil, DefaultInterval); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("IntegrateStrict(empty) error = %v, want ErrEmptySeries", err)
	}

	got, err := MeanStrict(weekDurations)
	if err != nil {
		t.Fatalf("MeanStrict(non-empty) error = %v", err)
	}
	if got != 1.75 {
		t.Errorf("MeanStrict = %v, want 1.75", got)
	}
}
