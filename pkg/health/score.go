// Package health provides the financial health scoring report.
package health

import (
	"math"

	"github.com/sandikodev/margin-pro/pkg/constants"
)

// Input carries the cash-flow figures the scorer consumes.
type Input struct {
	Revenue          float64
	Expense          float64
	Liabilities      float64
	MonthlyFixedCost float64
	MarginPerUnit    float64
	DailySalesQty    float64
	CurrentSavings   float64
}

// Report is the derived health report. It is never persisted; callers
// recompute it on every input change.
type Report struct {
	NetCashflow              float64
	TotalMonthlyBurden       float64
	MinUnitsPerDay           int
	ProjectedMonthlyProfit   float64
	ProjectedNetFreeCashflow float64
	TargetBufferAmount       float64
	MonthsToReachBuffer      float64 // +Inf when the buffer is not reachable
	SavingsPercentage        float64
	Score                    int
	Label                    string
}

// BufferReachable reports whether the emergency buffer will be reached on
// projected free cash flow.
func (r Report) BufferReachable() bool {
	return !math.IsInf(r.MonthsToReachBuffer, 1)
}

// Evaluate combines cash flow, liabilities, and savings into a breakeven,
// runway, and health-score report. Degenerate inputs (non-positive margin,
// zero burden) collapse to safe defaults rather than failing.
func Evaluate(in Input) Report {
	report := Report{
		NetCashflow:        in.Revenue - in.Expense,
		TotalMonthlyBurden: in.Liabilities + in.MonthlyFixedCost,
	}

	if in.MarginPerUnit > 0 {
		unitsPerMonth := math.Ceil(report.TotalMonthlyBurden / in.MarginPerUnit)
		report.MinUnitsPerDay = int(math.Ceil(unitsPerMonth / constants.DaysPerMonth))
	}

	report.ProjectedMonthlyProfit = in.DailySalesQty * in.MarginPerUnit * constants.DaysPerMonth
	report.ProjectedNetFreeCashflow = report.ProjectedMonthlyProfit - report.TotalMonthlyBurden
	report.TargetBufferAmount = report.TotalMonthlyBurden * constants.EmergencyBufferMonths

	report.MonthsToReachBuffer = math.Inf(1)
	if gap := report.TargetBufferAmount - in.CurrentSavings; gap > 0 && report.ProjectedNetFreeCashflow > 0 {
		report.MonthsToReachBuffer = math.Round(gap/report.ProjectedNetFreeCashflow*10) / 10
	}

	if report.TargetBufferAmount > 0 {
		report.SavingsPercentage = math.Min(
			in.CurrentSavings/report.TargetBufferAmount*constants.PercentageMultiplier,
			constants.PercentageMultiplier,
		)
	} else {
		// No burden means the buffer target is trivially met.
		report.SavingsPercentage = constants.PercentageMultiplier
	}

	if report.SavingsPercentage >= 50 {
		report.Score += 30
	}
	if report.SavingsPercentage >= 100 {
		report.Score += 20
	}
	if report.ProjectedNetFreeCashflow > 0 {
		report.Score += 30
	}
	if report.BufferReachable() && report.MonthsToReachBuffer < 6 {
		report.Score += 20
	}

	switch {
	case report.Score >= 80:
		report.Label = constants.HealthLabelHealthy
	case report.Score >= 50:
		report.Label = constants.HealthLabelWarning
	default:
		report.Label = constants.HealthLabelDanger
	}

	return report
}
