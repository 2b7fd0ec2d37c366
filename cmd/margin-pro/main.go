package main

import (
	"flag"
	"fmt"

	"github.com/sandikodev/margin-pro/internal/config"
	"github.com/sandikodev/margin-pro/internal/engine"
	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/costing"
	"github.com/sandikodev/margin-pro/pkg/health"
	"github.com/sandikodev/margin-pro/pkg/output"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("invalid output format %s, must be one of: %s, %s",
			outputFormat, constants.OutputFormatPretty, constants.OutputFormatCSV),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Compute per-channel price recommendations.
	results := engine.New(logger).Calculate(*conf)

	// Derive the burn rate over the project's bulk purchases.
	burnRate := costing.NewBurnRateCalculator(logger).Calculate(conf.Project.Costs, conf.Project.Production)

	report := output.Report{
		Results:  results,
		BurnRate: &burnRate,
	}
	if conf.HasFinancialInput() {
		healthReport := health.Evaluate(conf.HealthInput())
		report.Health = &healthReport
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
