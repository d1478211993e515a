package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Already two decimals", 106.62, 106.62},
		{"Round down", 106.6184, 106.62},
		{"Round up", 99.996, 100.00},
		{"Negative", -12.345678, -12.35},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Round(tt.input); result != tt.expected {
				t.Errorf("Round(%f) = %f, expected %f", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		input    float64
		expected bool
	}{
		{0, true},
		{0.005, true},
		{-0.01, true},
		{0.011, false},
		{-5, false},
	}

	for _, tt := range tests {
		if result := IsZero(tt.input); result != tt.expected {
			t.Errorf("IsZero(%f) = %t, expected %t", tt.input, result, tt.expected)
		}
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name        string
		val, lo, hi int
		expected    int
	}{
		{"Inside range", 6, 0, 12, 6},
		{"Below range", -3, 0, 12, 0},
		{"Above range", 20, 0, 12, 12},
		{"Upper bound equal to lower", 5, 0, 0, 0},
		{"Upper bound below lower", 5, 0, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ClampInt(tt.val, tt.lo, tt.hi); result != tt.expected {
				t.Errorf("ClampInt(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	if got := MonthlyRate(12, 0); math.Abs(got-0.01) > 1e-12 {
		t.Errorf("MonthlyRate(12, 0) = %f, expected 0.01", got)
	}
	if got := MonthlyRate(4.5, 1.5); math.Abs(got-0.005) > 1e-12 {
		t.Errorf("MonthlyRate(4.5, 1.5) = %f, expected 0.005", got)
	}
	if got := MonthlyRate(); got != 0 {
		t.Errorf("MonthlyRate() = %f, expected 0", got)
	}
}
