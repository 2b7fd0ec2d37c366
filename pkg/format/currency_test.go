package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 500, "Rp500"},
		{"Thousands grouped", 12500, "Rp12.500"},
		{"Millions grouped", 1234567, "Rp1.234.567"},
		{"Negative amount", -1250, "-Rp1.250"},
		{"Zero", 0, "Rp0"},
		{"Fraction rounds away", 999.6, "Rp1.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.amount); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Grouped", 12500, "12.500"},
		{"Negative", -12500, "-12.500"},
		{"Small", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := NumericCurrency(tt.amount); result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}
