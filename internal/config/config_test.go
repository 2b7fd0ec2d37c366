package config

import (
	"math"
	"strings"
	"testing"
)

const sampleConfig = `
project:
  name: Nasi Goreng Spesial
  targetProfit: 10000
  competitorPrice: 20000
  costs:
    - name: Packaging
      amount: 1000
      allocation: unit
    - name: Rice sack
      amount: 5000
      allocation: bulk
      batchYield: 10
  production:
    period: weekly
    daysActive: 5
    targetUnits: 100
platforms:
  - name: gofood
    commission: 20
    fixedFee: 1000
    withdrawal: 500
  - name: direct
    commission: 0
fees:
  promoPercent: 5
  taxRate: 11
financial:
  revenue: 10000000
  expense: 5000000
  liabilities: 1000000
  monthlyFixedCost: 2000000
  marginPerUnit: 5000
  dailySalesQty: 50
  currentSavings: 10000000
loans:
  - name: Working capital
    principal: 12000000
    annualRate: 0
    termMonths: 12
logging:
  level: debug
  format: console
output:
  format: csv
`

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}

	if conf.Project.Name != "Nasi Goreng Spesial" {
		t.Errorf("Project.Name = %q", conf.Project.Name)
	}
	if conf.Project.TargetProfit != 10000 {
		t.Errorf("Project.TargetProfit = %v, expected 10000", conf.Project.TargetProfit)
	}
	if len(conf.Project.Costs) != 2 {
		t.Fatalf("len(Costs) = %d, expected 2", len(conf.Project.Costs))
	}
	if conf.Project.Costs[1].BatchYield != 10 {
		t.Errorf("Costs[1].BatchYield = %v, expected 10", conf.Project.Costs[1].BatchYield)
	}
	if conf.Project.Production.DaysActive != 5 {
		t.Errorf("Production.DaysActive = %d, expected 5", conf.Project.Production.DaysActive)
	}
	if len(conf.Platforms) != 2 {
		t.Fatalf("len(Platforms) = %d, expected 2", len(conf.Platforms))
	}
	if conf.Platforms[0].Commission != 20 {
		t.Errorf("Platforms[0].Commission = %v, expected 20", conf.Platforms[0].Commission)
	}
	if conf.Fees.PromoPercent != 5 {
		t.Errorf("Fees.PromoPercent = %v, expected 5", conf.Fees.PromoPercent)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
	if len(conf.Loans) != 1 || conf.Loans[0].TermMonths != 12 {
		t.Errorf("Loans = %+v, expected one 12-month loan", conf.Loans)
	}
}

func TestCommissionTaxRate(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}
	if rate := conf.CommissionTaxRate(); rate != 11 {
		t.Errorf("CommissionTaxRate() = %v, expected 11", rate)
	}

	// An explicit zero must not fall back to the default.
	zeroTax := `
fees:
  taxRate: 0
`
	conf, err = LoadConfigurationFromReader(strings.NewReader(zeroTax))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}
	if rate := conf.CommissionTaxRate(); rate != 0 {
		t.Errorf("CommissionTaxRate() = %v, expected explicit 0", rate)
	}

	// Unset falls back to the default.
	conf, err = LoadConfigurationFromReader(strings.NewReader("project:\n  name: x\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}
	if rate := conf.CommissionTaxRate(); rate != 11 {
		t.Errorf("CommissionTaxRate() = %v, expected default 11", rate)
	}
}

func TestHealthInputIncludesLoanBurden(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}

	input := conf.HealthInput()
	// 1M configured liabilities plus a 1M/month zero-interest installment.
	if math.Abs(input.Liabilities-2000000) > 0.01 {
		t.Errorf("Liabilities = %.2f, expected 2000000", input.Liabilities)
	}
	if input.Revenue != 10000000 {
		t.Errorf("Revenue = %.2f, expected 10000000", input.Revenue)
	}
}

func TestHasFinancialInput(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}
	if !conf.HasFinancialInput() {
		t.Errorf("HasFinancialInput() = false, expected true")
	}

	empty := Configuration{}
	if empty.HasFinancialInput() {
		t.Errorf("HasFinancialInput() = true for empty config, expected false")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	badConfig := `
project:
  costs:
    - name: Rice
      amount: 140000
      allocation: bulk
  production:
    period: weekly
    daysActive: 5
    targetUnits: 100
platforms:
  - name: predatory
    commission: 95
fees:
  promoPercent: 5
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(badConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("ValidateConfiguration() returned %d warnings, expected 2: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "batchYield") {
		t.Errorf("first warning %q should mention batchYield", warnings[0])
	}
	if !strings.Contains(warnings[1], "not viable") {
		t.Errorf("second warning %q should flag viability", warnings[1])
	}
}

func TestLoadConfigurationExampleFile(t *testing.T) {
	conf, err := LoadConfiguration("../../config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	if conf.Project.Name == "" {
		t.Errorf("example config has no project name")
	}
	if len(conf.Project.Costs) == 0 {
		t.Errorf("example config has no cost items")
	}
	if len(conf.Platforms) == 0 {
		t.Errorf("example config has no platforms")
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example config produced warnings: %v", warnings)
	}
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("project: [unclosed"))
	if err == nil {
		t.Errorf("LoadConfigurationFromReader() with invalid YAML returned no error")
	}
}
