// Package costing provides cost allocation and burn-rate utilities for
// production cost items.
package costing

import "github.com/sandikodev/margin-pro/pkg/constants"

// CostItem is a single cost line item: either a per-unit cost or a bulk
// purchase amortized across output units or calendar days.
type CostItem struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Allocation string  `json:"allocation,omitempty"` // unit or bulk
	BatchYield float64 `json:"batchYield,omitempty"` // units or days one bulk purchase yields
	BulkUnit   string  `json:"bulkUnit,omitempty"`   // units or days
	IsRange    bool    `json:"isRange,omitempty"`
	MinAmount  float64 `json:"minAmount,omitempty"`
	MaxAmount  float64 `json:"maxAmount,omitempty"`
}

// Production describes how many sellable units one production cycle yields
// and over how many active days.
type Production struct {
	Period      string `json:"period,omitempty"` // daily, weekly, monthly
	DaysActive  int    `json:"daysActive"`
	TargetUnits int    `json:"targetUnits"`
}

// AvgUnitsPerDay returns the average units produced per active day. A
// non-positive DaysActive counts as a single active day.
func (p Production) AvgUnitsPerDay() float64 {
	days := p.DaysActive
	if days <= 0 {
		days = 1
	}
	return float64(p.TargetUnits) / float64(days)
}

// EffectiveUnitCost converts a cost item into its contribution to the cost of
// one sold unit. Unit-allocated items pass through unchanged. Bulk items
// amortize the purchase amount over their yield; day-consumed bulk items
// amortize over the units produced during the yield's day span. Bulk items
// without a positive yield contribute 0 rather than failing; validation
// surfaces those as warnings.
func EffectiveUnitCost(item CostItem, production Production) float64 {
	if item.Allocation != constants.AllocationBulk {
		return item.Amount
	}

	if item.BulkUnit == constants.BulkUnitDays {
		totalUnitYield := item.BatchYield * production.AvgUnitsPerDay()
		if totalUnitYield <= 0 {
			return 0
		}
		return item.Amount / totalUnitYield
	}

	if item.BatchYield <= 0 {
		return 0
	}
	return item.Amount / item.BatchYield
}

// TotalUnitCost sums the effective per-unit cost of every item, i.e. the HPP
// (per-unit production cost).
func TotalUnitCost(items []CostItem, production Production) float64 {
	total := 0.0
	for _, item := range items {
		total += EffectiveUnitCost(item, production)
	}
	return total
}
