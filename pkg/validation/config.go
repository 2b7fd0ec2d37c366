// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/costing"
)

// ValidateCostItem warns about cost items whose configuration makes their
// effective cost collapse or their range meaningless.
func ValidateCostItem(item costing.CostItem) []string {
	var warnings []string

	if item.Allocation == constants.AllocationBulk && item.BatchYield <= 0 {
		warnings = append(warnings, fmt.Sprintf("Cost item '%s' is bulk-allocated without a positive batchYield - its effective cost is treated as 0",
			item.Name))
	}

	switch item.Allocation {
	case "", constants.AllocationUnit, constants.AllocationBulk:
	default:
		warnings = append(warnings, fmt.Sprintf("Cost item '%s' has unknown allocation '%s' - treated as a per-unit cost",
			item.Name, item.Allocation))
	}

	if item.IsRange && item.MaxAmount < item.MinAmount {
		warnings = append(warnings, fmt.Sprintf("Cost item '%s' has maxAmount below minAmount", item.Name))
	}

	return warnings
}

// ValidateProduction warns about production schedules that cannot yield units.
func ValidateProduction(production costing.Production) []string {
	var warnings []string

	if production.DaysActive <= 0 {
		warnings = append(warnings, fmt.Sprintf("Production daysActive is %d - calculations assume a single active day",
			production.DaysActive))
	}
	if production.TargetUnits <= 0 {
		warnings = append(warnings, "Production targetUnits is not positive - day-amortized bulk costs collapse to 0")
	}

	switch production.Period {
	case "", constants.PeriodDaily, constants.PeriodWeekly, constants.PeriodMonthly:
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown production period '%s'", production.Period))
	}

	return warnings
}

// ValidateChannelFees warns when a channel's variable fees consume the whole
// selling price, which makes any protective price undefined.
func ValidateChannelFees(name string, commissionPercent, taxRatePercent, promoPercent float64) []string {
	commission := commissionPercent / constants.PercentageMultiplier
	effective := commission + commission*taxRatePercent/constants.PercentageMultiplier + promoPercent/constants.PercentageMultiplier

	if effective >= 1 {
		return []string{fmt.Sprintf("Channel '%s' variable fees consume %.0f%% of the selling price - channel is not viable",
			name, effective*constants.PercentageMultiplier)}
	}
	return nil
}

// ChannelFees holds the fee parameters of one channel for validation.
type ChannelFees struct {
	Name       string
	Commission float64 // percent
}

// ConfigValidator performs comprehensive configuration validation.
type ConfigValidator struct {
	Costs      []costing.CostItem
	Production costing.Production
	Channels   []ChannelFees
	TaxRate    float64 // percent on commission
	Promo      float64 // percent of price
}

// ValidateAll validates the entire configuration and returns warnings.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	for _, item := range cv.Costs {
		warnings = append(warnings, ValidateCostItem(item)...)
	}

	warnings = append(warnings, ValidateProduction(cv.Production)...)

	for _, channel := range cv.Channels {
		warnings = append(warnings, ValidateChannelFees(channel.Name, channel.Commission, cv.TaxRate, cv.Promo)...)
	}

	return warnings
}
