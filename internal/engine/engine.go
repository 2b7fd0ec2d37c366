// Package engine computes per-channel selling price recommendations that
// preserve a target net profit after each channel's fees.
package engine

import (
	"fmt"

	"github.com/sandikodev/margin-pro/internal/config"
	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/costing"
	"github.com/sandikodev/margin-pro/pkg/pricing"
	"go.uber.org/zap"
)

// Breakdown itemizes the deductions at the recommended price for display.
type Breakdown struct {
	UnitCost      float64 `json:"unitCost"`
	Commission    float64 `json:"commission"`
	CommissionTax float64 `json:"commissionTax"`
	Promo         float64 `json:"promo"`
	FixedFee      float64 `json:"fixedFee"`
	Withdrawal    float64 `json:"withdrawal"`
}

// CalculationResult holds the evaluated price scenarios for one channel.
type CalculationResult struct {
	Platform             string                  `json:"platform"`
	Viable               bool                    `json:"viable"`
	Recommended          pricing.ScenarioResult  `json:"recommended"`
	Market               *pricing.ScenarioResult `json:"market,omitempty"`
	CompetitorProtection *pricing.ScenarioResult `json:"competitorProtection,omitempty"`
	Breakdown            Breakdown               `json:"breakdown"`
}

// Engine orchestrates cost aggregation, price solving, and scenario
// evaluation per channel.
type Engine struct {
	logger *zap.Logger
}

// New creates an engine. If logger is nil, it will use a no-op logger to
// prevent panics.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Calculate produces one CalculationResult per configured platform. The
// channel set is whatever the configuration carries; nothing is hardcoded.
// The computation is a pure function of its inputs, so identical
// configurations always yield identical results.
func (e *Engine) Calculate(conf config.Configuration) []CalculationResult {
	unitCost := costing.TotalUnitCost(conf.Project.Costs, conf.Project.Production)
	taxRate := conf.CommissionTaxRate() / constants.PercentageMultiplier
	promo := conf.Fees.PromoPercent / constants.PercentageMultiplier

	targetProfit := conf.Project.TargetProfit
	if targetProfit == 0 && conf.Project.TargetMarginPercent > 0 {
		targetProfit = pricing.ImpliedTargetProfit(unitCost, conf.Project.TargetMarginPercent)
	}

	results := make([]CalculationResult, 0, len(conf.Platforms))
	for _, platform := range conf.Platforms {
		commission := platform.Commission / constants.PercentageMultiplier
		// Tax and promo both ride on top of the commission, not on each other.
		variableFee := commission + commission*taxRate + promo
		fixedFees := platform.FixedFee + platform.Withdrawal

		result := CalculationResult{
			Platform: platform.Name,
			Viable:   variableFee < 1,
		}

		if !result.Viable {
			e.logger.Debug(fmt.Sprintf("channel %s is not viable: variable fees consume the whole price", platform.Name),
				zap.String("op", "engine.Calculate"),
				zap.Float64("variableFee", variableFee),
			)
		}

		price := pricing.SmartRoundUp(pricing.TargetPrice(unitCost, targetProfit, fixedFees, variableFee))
		result.Recommended = pricing.EvaluateScenario(price, unitCost, variableFee, fixedFees)

		if conf.Project.CompetitorPrice > 0 {
			market := pricing.EvaluateScenario(conf.Project.CompetitorPrice, unitCost, variableFee, fixedFees)
			result.Market = &market

			// Never protect a loss: a market price below cost implies a
			// zero-profit target, not a negative one.
			protectedProfit := conf.Project.CompetitorPrice - unitCost
			if protectedProfit < 0 {
				protectedProfit = 0
			}
			protectedPrice := pricing.SmartRoundUp(pricing.TargetPrice(unitCost, protectedProfit, fixedFees, variableFee))
			protection := pricing.EvaluateScenario(protectedPrice, unitCost, variableFee, fixedFees)
			result.CompetitorProtection = &protection
		}

		// All breakdown amounts are computed against the recommended price
		// for display consistency.
		result.Breakdown = Breakdown{
			UnitCost:      unitCost,
			Commission:    price * commission,
			CommissionTax: price * commission * taxRate,
			Promo:         price * promo,
			FixedFee:      platform.FixedFee,
			Withdrawal:    platform.Withdrawal,
		}

		e.logger.Debug(fmt.Sprintf("channel %s priced at %.0f", platform.Name, price),
			zap.String("op", "engine.Calculate"),
			zap.Float64("unitCost", unitCost),
			zap.Float64("netProfit", result.Recommended.NetProfit),
		)

		results = append(results, result)
	}

	return results
}
