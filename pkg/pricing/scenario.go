package pricing

import "github.com/sandikodev/margin-pro/pkg/constants"

// ScenarioResult is the evaluated outcome of charging a specific price on a
// specific channel.
type ScenarioResult struct {
	Price           float64 `json:"price"`
	NetProfit       float64 `json:"netProfit"`
	TotalDeductions float64 `json:"totalDeductions"`
	ROI             float64 `json:"roi"`
	MarginPercent   float64 `json:"marginPercent"`
	IsBleeding      bool    `json:"isBleeding"`
}

// EvaluateScenario derives profit, margin, and ROI for selling at the given
// price. variableFeeRate is the fraction of the price deducted per order
// (commission plus its tax plus promo subsidy); fixedFees is the flat
// deduction per order. Division guards return 0 instead of failing.
func EvaluateScenario(sellingPrice, unitCost, variableFeeRate, fixedFees float64) ScenarioResult {
	totalDeductions := sellingPrice*variableFeeRate + fixedFees
	netProfit := sellingPrice - totalDeductions - unitCost

	roi := 0.0
	if unitCost > 0 {
		roi = netProfit / unitCost * constants.PercentageMultiplier
	}

	marginPercent := 0.0
	if sellingPrice > 0 {
		marginPercent = netProfit / sellingPrice * constants.PercentageMultiplier
	}

	return ScenarioResult{
		Price:           sellingPrice,
		NetProfit:       netProfit,
		TotalDeductions: totalDeductions,
		ROI:             roi,
		MarginPercent:   marginPercent,
		IsBleeding:      netProfit < 0,
	}
}

// TargetPrice solves for the selling price that leaves targetProfit after
// the variable fee share and fixed fees are deducted:
//
//	price = (unitCost + targetProfit + fixedFees) / (1 - variableFeeRate)
//
// A denominator at or below zero means fees consume the whole price; no
// protective price exists and 0 is returned.
func TargetPrice(unitCost, targetProfit, fixedFees, variableFeeRate float64) float64 {
	denominator := 1 - variableFeeRate
	if denominator <= 0 {
		return 0
	}
	return (unitCost + targetProfit + fixedFees) / denominator
}

// ImpliedTargetProfit derives an absolute profit target from a margin
// percentage, for projects that configure a target margin instead of a
// target profit. Margins outside (0, 100) yield 0.
func ImpliedTargetProfit(unitCost, marginPercent float64) float64 {
	margin := marginPercent / constants.PercentageMultiplier
	if margin <= 0 || margin >= 1 {
		return 0
	}
	return unitCost * margin / (1 - margin)
}
