package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{"Round down", 1.234, 1.23},
		{"Round up", 1.236, 1.24},
		{"Negative", -1.236, -1.24},
		{"Whole number", 5.0, 5.0},
		{"Machine error residue", 0.004999, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Round(tt.val); result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.val, result, tt.expected)
			}
		})
	}
}

func TestRoundUpToStep(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		step     float64
		expected float64
	}{
		{"Round up to 100", 1234, 100, 1300},
		{"Round up to 500", 50100, 500, 50500},
		{"Exact multiple", 2000, 100, 2000},
		{"Zero step passes through", 1234, 0, 1234},
		{"Negative step passes through", 1234, -100, 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RoundUpToStep(tt.val, tt.step); result != tt.expected {
				t.Errorf("RoundUpToStep(%v, %v) = %v, expected %v", tt.val, tt.step, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Errorf("IsZero(0.005) = false, expected true within tolerance")
	}
	if IsZero(0.5) {
		t.Errorf("IsZero(0.5) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.5, 1.0) {
		t.Errorf("WithinTolerance(100, 100.5, 1) = false, expected true")
	}
	if WithinTolerance(100.0, 102.0, 1.0) {
		t.Errorf("WithinTolerance(100, 102, 1) = true, expected false")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 3) != 2 {
		t.Errorf("Min(2, 3) = %v, expected 2", Min(2, 3))
	}
	if Max(2, 3) != 3 {
		t.Errorf("Max(2, 3) = %v, expected 3", Max(2, 3))
	}
}
