package validation

import (
	"strings"
	"testing"

	"github.com/sandikodev/margin-pro/pkg/costing"
)

func TestValidateCostItem(t *testing.T) {
	tests := []struct {
		name         string
		item         costing.CostItem
		wantWarnings int
		wantContains string
	}{
		{
			name:         "Valid unit item",
			item:         costing.CostItem{Name: "Cup", Amount: 500, Allocation: "unit"},
			wantWarnings: 0,
		},
		{
			name:         "Valid bulk item",
			item:         costing.CostItem{Name: "Rice", Amount: 140000, Allocation: "bulk", BatchYield: 100},
			wantWarnings: 0,
		},
		{
			name:         "Bulk without yield",
			item:         costing.CostItem{Name: "Rice", Amount: 140000, Allocation: "bulk"},
			wantWarnings: 1,
			wantContains: "batchYield",
		},
		{
			name:         "Unknown allocation",
			item:         costing.CostItem{Name: "Mystery", Amount: 100, Allocation: "batch"},
			wantWarnings: 1,
			wantContains: "unknown allocation",
		},
		{
			name:         "Inverted range",
			item:         costing.CostItem{Name: "Chili", Amount: 100, IsRange: true, MinAmount: 200, MaxAmount: 100},
			wantWarnings: 1,
			wantContains: "maxAmount below minAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateCostItem(tt.item)

			if len(warnings) != tt.wantWarnings {
				t.Fatalf("ValidateCostItem() returned %d warnings, expected %d: %v",
					len(warnings), tt.wantWarnings, warnings)
			}
			if tt.wantContains != "" && !strings.Contains(warnings[0], tt.wantContains) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.wantContains)
			}
		})
	}
}

func TestValidateProduction(t *testing.T) {
	if warnings := ValidateProduction(costing.Production{Period: "weekly", DaysActive: 5, TargetUnits: 100}); len(warnings) != 0 {
		t.Errorf("valid production returned warnings: %v", warnings)
	}

	warnings := ValidateProduction(costing.Production{Period: "fortnightly", DaysActive: 0, TargetUnits: 0})
	if len(warnings) != 3 {
		t.Errorf("degenerate production returned %d warnings, expected 3: %v", len(warnings), warnings)
	}
}

func TestValidateChannelFees(t *testing.T) {
	if warnings := ValidateChannelFees("gofood", 20, 11, 5); len(warnings) != 0 {
		t.Errorf("viable channel returned warnings: %v", warnings)
	}

	warnings := ValidateChannelFees("predatory", 95, 11, 5)
	if len(warnings) != 1 {
		t.Fatalf("non-viable channel returned %d warnings, expected 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "not viable") {
		t.Errorf("warning %q does not flag viability", warnings[0])
	}
}

func TestConfigValidatorValidateAll(t *testing.T) {
	validator := ConfigValidator{
		Costs: []costing.CostItem{
			{Name: "Cup", Amount: 500, Allocation: "unit"},
			{Name: "Rice", Amount: 140000, Allocation: "bulk"},
		},
		Production: costing.Production{Period: "weekly", DaysActive: 5, TargetUnits: 100},
		Channels: []ChannelFees{
			{Name: "gofood", Commission: 20},
			{Name: "predatory", Commission: 95},
		},
		TaxRate: 11,
		Promo:   5,
	}

	warnings := validator.ValidateAll()
	if len(warnings) != 2 {
		t.Errorf("ValidateAll() returned %d warnings, expected 2: %v", len(warnings), warnings)
	}
}
