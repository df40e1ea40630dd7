package realstats

import (
	"math"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		candidate float64
		wantValid bool
		wantValue float64
	}{
		{name: "zero is valid", candidate: 0, wantValid: true, wantValue: 0},
		{name: "positive is valid", candidate: 2.5, wantValid: true, wantValue: 2.5},
		{name: "rounds to six decimals", candidate: 3.1234567, wantValid: true, wantValue: 3.123457},
		{name: "half rounds away from zero", candidate: 1.0000005, wantValid: true, wantValue: 1.000001},
		{name: "negative is invalid", candidate: -1, wantValid: false, wantValue: 0},
		{name: "NaN is invalid", candidate: math.NaN(), wantValid: false, wantValue: 0},
		{name: "positive infinity is invalid", candidate: math.Inf(1), wantValid: false, wantValue: 0},
		{name: "negative infinity is invalid", candidate: math.Inf(-1), wantValid: false, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.candidate)
			if got.Valid != tt.wantValid {
				t.Fatalf("New(%v).Valid = %v, want %v", tt.candidate, got.Valid, tt.wantValid)
			}
			if got.Value != tt.wantValue {
				t.Errorf("New(%v).Value = %v, want %v", tt.candidate, got.Value, tt.wantValue)
			}
			if tt.wantValid && got.Reason != "" {
				t.Errorf("valid RealNumber should carry no reason, got %q", got.Reason)
			}
			if !tt.wantValid && got.Reason == "" {
				t.Error("invalid RealNumber should carry a reason")
			}
		})
	}
}

func TestNew_NegativeReason(t *testing.T) {
	got := New(-1)
	if got.Reason != "value is negative" {
		t.Errorf("New(-1).Reason = %q, want %q", got.Reason, "value is negative")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{15, 0, 10, 10},
		{-5, 0, 10, 0},
		{5, 0, 10, 5},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestUnitConversion(t *testing.T) {
	if got := HoursToMinutes(1.5); got != 90 {
		t.Errorf("HoursToMinutes(1.5) = %v, want 90", got)
	}
	if got := MinutesToHours(90); got != 1.5 {
		t.Errorf("MinutesToHours(90) = %v, want 1.5", got)
	}
	// 100 minutes is 1.666... hours; verify the 4-decimal rounding.
	if got := MinutesToHours(100); got != 1.6667 {
		t.Errorf("MinutesToHours(100) = %v, want 1.6667", got)
	}
}
