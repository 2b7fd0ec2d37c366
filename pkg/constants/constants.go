// Package constants provides shared constants for the margin-pro application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerMonth is the simplified month length used for cash-flow projections
	DaysPerMonth = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons
	CurrencyTolerance = 0.01

	// DefaultCommissionTaxRate is the tax rate charged on top of platform
	// commission when none is configured, in percent
	DefaultCommissionTaxRate = 11.0

	// EmergencyBufferMonths is the number of months of monthly burden
	// targeted as an emergency fund
	EmergencyBufferMonths = 3
)

// Price rounding tiers
const (
	// RoundingThreshold is the price at which rounding switches steps
	RoundingThreshold = 50000.0

	// SmallPriceStep is the rounding step for prices below the threshold
	SmallPriceStep = 100.0

	// LargePriceStep is the rounding step for prices at or above the threshold
	LargePriceStep = 500.0
)

// Cost allocation modes
const (
	// AllocationUnit marks a cost that is already expressed per sold unit
	AllocationUnit = "unit"

	// AllocationBulk marks a cost purchased once and consumed across many
	// units or days
	AllocationBulk = "bulk"

	// BulkUnitUnits amortizes a bulk purchase across output units
	BulkUnitUnits = "units"

	// BulkUnitDays amortizes a bulk purchase across calendar days
	BulkUnitDays = "days"
)

// Production periods
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"

	// DefaultCycleDays is the restocking cycle window assumed for
	// non-weekly production periods
	DefaultCycleDays = 7
)

// Health score labels
const (
	HealthLabelHealthy = "Healthy"
	HealthLabelWarning = "Warning"
	HealthLabelDanger  = "Danger"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
