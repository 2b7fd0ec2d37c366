// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/costing"
	"github.com/sandikodev/margin-pro/pkg/health"
	"github.com/sandikodev/margin-pro/pkg/loans"
	"github.com/sandikodev/margin-pro/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for margin-pro.
type Configuration struct {
	Project   Project
	Platforms []Platform
	Fees      FeeConfig
	Financial FinancialConfig
	Loans     []Loan
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Project holds the product being priced: its cost items, production
// schedule, and profit targets.
type Project struct {
	Name                string
	TargetProfit        float64
	TargetMarginPercent float64 // fallback when TargetProfit is 0
	CompetitorPrice     float64 // optional known market price
	Costs               []costing.CostItem
	Production          costing.Production
}

// Platform holds one sales channel and its fee overrides.
type Platform struct {
	Name       string
	Commission float64 // percent of price
	FixedFee   float64 // flat fee per order
	Withdrawal float64 // withdrawal fee per order
}

// FeeConfig holds the fee parameters shared across all platforms.
type FeeConfig struct {
	PromoPercent float64  // promotional subsidy, percent of price
	TaxRate      *float64 // percent charged on commission; nil uses the default
}

// FinancialConfig holds the cash-flow inputs for the health report.
type FinancialConfig struct {
	Revenue          float64
	Expense          float64
	Liabilities      float64
	MonthlyFixedCost float64
	MarginPerUnit    float64
	DailySalesQty    float64
	CurrentSavings   float64
}

// Loan is one outstanding installment loan.
type Loan struct {
	Name       string
	Principal  float64
	AnnualRate float64 // percent
	TermMonths int
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader, e.g. an uploaded request body.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// CommissionTaxRate returns the configured tax rate on commission in percent,
// falling back to the default when the config leaves it unset.
func (c *Configuration) CommissionTaxRate() float64 {
	if c.Fees.TaxRate != nil {
		return *c.Fees.TaxRate
	}
	return constants.DefaultCommissionTaxRate
}

// HealthInput converts the financial section into scorer input. Configured
// loans contribute their monthly installment to the liability burden.
func (c *Configuration) HealthInput() health.Input {
	return health.Input{
		Revenue:          c.Financial.Revenue,
		Expense:          c.Financial.Expense,
		Liabilities:      c.Financial.Liabilities + loans.TotalMonthlyPayment(c.LoanConfigs()),
		MonthlyFixedCost: c.Financial.MonthlyFixedCost,
		MarginPerUnit:    c.Financial.MarginPerUnit,
		DailySalesQty:    c.Financial.DailySalesQty,
		CurrentSavings:   c.Financial.CurrentSavings,
	}
}

// HasFinancialInput reports whether the financial section carries any data
// worth scoring.
func (c *Configuration) HasFinancialInput() bool {
	return c.Financial != (FinancialConfig{})
}

// LoanConfigs converts the configured loans for the loans package.
func (c *Configuration) LoanConfigs() []loans.LoanConfig {
	configs := make([]loans.LoanConfig, 0, len(c.Loans))
	for _, loan := range c.Loans {
		configs = append(configs, loans.LoanConfig{
			Name:       loan.Name,
			Principal:  loan.Principal,
			AnnualRate: loan.AnnualRate,
			TermMonths: loan.TermMonths,
		})
	}
	return configs
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	channels := make([]validation.ChannelFees, 0, len(c.Platforms))
	for _, platform := range c.Platforms {
		channels = append(channels, validation.ChannelFees{
			Name:       platform.Name,
			Commission: platform.Commission,
		})
	}

	validator := validation.ConfigValidator{
		Costs:      c.Project.Costs,
		Production: c.Project.Production,
		Channels:   channels,
		TaxRate:    c.CommissionTaxRate(),
		Promo:      c.Fees.PromoPercent,
	}
	return validator.ValidateAll()
}
