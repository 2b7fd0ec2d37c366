// Package loans provides loan payment and amortization utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds the values for a given monthly installment.
type Payment struct {
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

// LoanConfig represents loan configuration parameters.
type LoanConfig struct {
	Name       string
	Principal  float64
	AnnualRate float64 // percent
	TermMonths int
}

// CalculateMonthlyPayment calculates the monthly installment for a loan using
// the standard amortization formula. Zero-interest loans divide the principal
// evenly across the term.
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRate float64) float64 {
	return remainingPrincipal * annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// TotalMonthlyPayment sums the monthly installments across all loans, i.e.
// the monthly loan burden feeding the financial health report.
func TotalMonthlyPayment(loanConfigs []LoanConfig) float64 {
	total := 0.0
	for _, loan := range loanConfigs {
		total += CalculateMonthlyPayment(loan.Principal, loan.AnnualRate, loan.TermMonths)
	}
	return total
}

// ScheduleGenerator provides utilities for generating loan amortization
// schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the complete month-by-month amortization schedule
// for a loan. Loans with no positive principal or term yield an empty
// schedule.
func (g *ScheduleGenerator) GenerateSchedule(loan LoanConfig) []Payment {
	if loan.Principal <= 0 || loan.TermMonths <= 0 {
		return nil
	}

	monthlyPayment := CalculateMonthlyPayment(loan.Principal, loan.AnnualRate, loan.TermMonths)
	schedule := make([]Payment, 0, loan.TermMonths)
	remaining := loan.Principal

	for month := 1; month <= loan.TermMonths; month++ {
		interest := CalculateInterestPayment(remaining, loan.AnnualRate)
		principal := monthlyPayment - interest
		remaining -= principal

		if month == loan.TermMonths || mathutil.Round(remaining) == 0 {
			// We will get machine error otherwise so just set to 0.
			remaining = 0.00
		}

		schedule = append(schedule, Payment{
			Payment:            monthlyPayment,
			Principal:          principal,
			Interest:           interest,
			RemainingPrincipal: remaining,
		})

		if remaining == 0 && month < loan.TermMonths {
			g.logger.Debug(fmt.Sprintf("loan %s fully repaid at month %d of %d", loan.Name, month, loan.TermMonths),
				zap.String("op", "loans.GenerateSchedule"),
			)
			break
		}
	}

	return schedule
}

// TotalInterest sums the interest paid across a schedule.
func TotalInterest(schedule []Payment) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.Interest
	}
	return total
}
