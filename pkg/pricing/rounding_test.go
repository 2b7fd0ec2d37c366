package pricing

import "testing"

func TestSmartRoundUp(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{
			name:     "Low price rounds up to nearest 100",
			price:    1234,
			expected: 1300,
		},
		{
			name:     "Just below threshold rounds to it",
			price:    49950,
			expected: 50000,
		},
		{
			name:     "Above threshold rounds up to nearest 500",
			price:    50100,
			expected: 50500,
		},
		{
			name:     "Exact multiple stays put",
			price:    23800,
			expected: 23800,
		},
		{
			name:     "Exact threshold stays put",
			price:    50000,
			expected: 50000,
		},
		{
			name:     "Zero price",
			price:    0,
			expected: 0,
		},
		{
			name:     "Negative price collapses to zero",
			price:    -500,
			expected: 0,
		},
		{
			name:     "Tiny price rounds to 100",
			price:    1,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SmartRoundUp(tt.price)

			if result != tt.expected {
				t.Errorf("SmartRoundUp(%.2f) = %.2f, expected %.2f", tt.price, result, tt.expected)
			}
		})
	}
}

func TestSmartRoundUpNeverLowersPrice(t *testing.T) {
	for price := 1.0; price < 120000; price += 137.3 {
		if rounded := SmartRoundUp(price); rounded < price {
			t.Fatalf("SmartRoundUp(%.2f) = %.2f, rounded below input", price, rounded)
		}
	}
}
