package costing

import (
	"fmt"

	"github.com/sandikodev/margin-pro/pkg/constants"
	"go.uber.org/zap"
)

// BurnRate describes how fast bulk-purchased capital is consumed.
type BurnRate struct {
	TotalPurchase float64 `json:"totalPurchase"`
	DailyBurnRate float64 `json:"dailyBurnRate"`
	CycleBurnRate float64 `json:"cycleBurnRate"`
}

// BurnRateCalculator derives daily and per-cycle cash outflow for bulk
// purchases.
type BurnRateCalculator struct {
	logger *zap.Logger
}

// NewBurnRateCalculator creates a new calculator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewBurnRateCalculator(logger *zap.Logger) *BurnRateCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BurnRateCalculator{logger: logger}
}

// Calculate computes the burn rate over the bulk-allocated subset of items.
// TotalPurchase is the cash needed to restock once. The restocking cycle
// spans the active days for weekly production and a fixed 7-day window for
// all other periods; the asymmetry is inherited business policy, not an
// oversight.
func (c *BurnRateCalculator) Calculate(items []CostItem, production Production) BurnRate {
	var rate BurnRate
	for _, item := range items {
		if item.Allocation != constants.AllocationBulk {
			continue
		}
		rate.TotalPurchase += item.Amount

		if item.BatchYield <= 0 {
			c.logger.Debug(fmt.Sprintf("skipping burn contribution for %s: no positive batch yield", item.Name),
				zap.String("op", "costing.Calculate"),
			)
			continue
		}

		if item.BulkUnit == constants.BulkUnitDays {
			// Consumed per calendar day regardless of sales volume.
			rate.DailyBurnRate += item.Amount / item.BatchYield
			continue
		}

		dailyUnits := float64(production.TargetUnits)
		if production.Period == constants.PeriodWeekly {
			dailyUnits = production.AvgUnitsPerDay()
		}
		rate.DailyBurnRate += item.Amount / item.BatchYield * dailyUnits
	}

	cycleDays := float64(constants.DefaultCycleDays)
	if production.Period == constants.PeriodWeekly && production.DaysActive > 0 {
		cycleDays = float64(production.DaysActive)
	}
	rate.CycleBurnRate = rate.DailyBurnRate * cycleDays

	return rate
}
