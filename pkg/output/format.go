// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/sandikodev/margin-pro/internal/engine"
	"github.com/sandikodev/margin-pro/pkg/costing"
	"github.com/sandikodev/margin-pro/pkg/format"
	"github.com/sandikodev/margin-pro/pkg/health"
	"github.com/sandikodev/margin-pro/pkg/pricing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report bundles everything one CLI run renders.
type Report struct {
	Results  []engine.CalculationResult
	BurnRate *costing.BurnRate
	Health   *health.Report
}

// PrettyFormat outputs a human-readable table per channel plus the burn-rate
// and health summaries when present.
func PrettyFormat(report Report) {
	p := message.NewPrinter(language.English)

	for _, result := range report.Results {
		fmt.Printf("--- Results for channel %s ---\n", result.Platform)
		if !result.Viable {
			fmt.Printf("channel fees consume the whole selling price; no protective price exists\n")
		}
		fmt.Printf("Scenario              | Price         | Net Profit    | Margin  | ROI\n")
		fmt.Printf("________              | _____         | __________    | ______  | ___\n")
		printScenario(p, "Recommended", result.Recommended)
		if result.Market != nil {
			printScenario(p, "At market price", *result.Market)
		}
		if result.CompetitorProtection != nil {
			printScenario(p, "Competitor protection", *result.CompetitorProtection)
		}
		fmt.Printf("Breakdown: cost %s | commission %s | tax %s | promo %s | fixed %s | withdrawal %s\n\n",
			format.Currency(result.Breakdown.UnitCost),
			format.Currency(result.Breakdown.Commission),
			format.Currency(result.Breakdown.CommissionTax),
			format.Currency(result.Breakdown.Promo),
			format.Currency(result.Breakdown.FixedFee),
			format.Currency(result.Breakdown.Withdrawal),
		)
	}

	if report.BurnRate != nil {
		fmt.Printf("--- Burn rate ---\n")
		fmt.Printf("Restock purchase: %s\n", format.Currency(report.BurnRate.TotalPurchase))
		fmt.Printf("Daily burn:       %s\n", format.Currency(report.BurnRate.DailyBurnRate))
		fmt.Printf("Cycle burn:       %s\n\n", format.Currency(report.BurnRate.CycleBurnRate))
	}

	if report.Health != nil {
		printHealth(report.Health)
	}
}

func printScenario(p *message.Printer, name string, scenario pricing.ScenarioResult) {
	bleeding := ""
	if scenario.IsBleeding {
		bleeding = " (bleeding)"
	}
	_, _ = p.Printf("%-21s | %-13s | %-13s | %5.1f%% | %.1f%%%s\n",
		name,
		format.Currency(scenario.Price),
		format.Currency(scenario.NetProfit),
		scenario.MarginPercent,
		scenario.ROI,
		bleeding,
	)
}

func printHealth(report *health.Report) {
	fmt.Printf("--- Financial health: %s (score %d) ---\n", report.Label, report.Score)
	fmt.Printf("Net cashflow:            %s\n", format.Currency(report.NetCashflow))
	fmt.Printf("Monthly burden:          %s\n", format.Currency(report.TotalMonthlyBurden))
	fmt.Printf("Breakeven units per day: %d\n", report.MinUnitsPerDay)
	fmt.Printf("Projected free cashflow: %s\n", format.Currency(report.ProjectedNetFreeCashflow))
	fmt.Printf("Buffer target:           %s (%.0f%% funded)\n", format.Currency(report.TargetBufferAmount), report.SavingsPercentage)
	switch {
	case report.SavingsPercentage >= 100:
		fmt.Printf("Months to buffer:        reached\n")
	case report.BufferReachable():
		fmt.Printf("Months to buffer:        %.1f\n", report.MonthsToReachBuffer)
	default:
		fmt.Printf("Months to buffer:        not reachable at current cash flow\n")
	}
}

// CsvFormat outputs channel results in comma-separated value format.
func CsvFormat(results []engine.CalculationResult) {
	fmt.Print(CsvString(results))
}

// CsvString renders channel results as CSV, one row per channel and scenario.
func CsvString(results []engine.CalculationResult) string {
	var builder strings.Builder
	builder.WriteString(`"channel","scenario","price","netProfit","totalDeductions","roi","marginPercent","isBleeding"`)
	builder.WriteString("\n")

	for _, result := range results {
		writeCsvRow(&builder, result.Platform, "recommended", result.Recommended)
		if result.Market != nil {
			writeCsvRow(&builder, result.Platform, "market", *result.Market)
		}
		if result.CompetitorProtection != nil {
			writeCsvRow(&builder, result.Platform, "competitorProtection", *result.CompetitorProtection)
		}
	}

	return builder.String()
}

func writeCsvRow(builder *strings.Builder, channel, scenario string, s pricing.ScenarioResult) {
	fmt.Fprintf(builder, `"%s","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%t"`,
		channel, scenario, s.Price, s.NetProfit, s.TotalDeductions, s.ROI, s.MarginPercent, s.IsBleeding)
	builder.WriteString("\n")
}
