// Package server exposes the pricing engine as a stateless JSON API. Clients
// post a YAML configuration and receive fresh calculation results; nothing is
// persisted between requests.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandikodev/margin-pro/internal/config"
	"github.com/sandikodev/margin-pro/internal/engine"
	"github.com/sandikodev/margin-pro/pkg/constants"
	"github.com/sandikodev/margin-pro/pkg/costing"
	"github.com/sandikodev/margin-pro/pkg/health"
	"github.com/sandikodev/margin-pro/pkg/loans"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculation API endpoint (YAML configuration upload)
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calculateResponse struct {
	Results  []engine.CalculationResult `json:"results"`
	BurnRate costing.BurnRate           `json:"burnRate"`
	Health   *healthMetric              `json:"health,omitempty"`
	Loans    []loanMetric               `json:"loans,omitempty"`
	Warnings []string                   `json:"warnings,omitempty"`
	Duration string                     `json:"duration"`
}

// healthMetric mirrors health.Report with a JSON-safe months field; the
// report's infinity sentinel is not representable in JSON and is omitted.
type healthMetric struct {
	NetCashflow              float64  `json:"netCashflow"`
	TotalMonthlyBurden       float64  `json:"totalMonthlyBurden"`
	MinUnitsPerDay           int      `json:"minUnitsPerDay"`
	ProjectedMonthlyProfit   float64  `json:"projectedMonthlyProfit"`
	ProjectedNetFreeCashflow float64  `json:"projectedNetFreeCashflow"`
	TargetBufferAmount       float64  `json:"targetBufferAmount"`
	MonthsToReachBuffer      *float64 `json:"monthsToReachBuffer,omitempty"`
	SavingsPercentage        float64  `json:"savingsPercentage"`
	Score                    int      `json:"score"`
	Label                    string   `json:"label"`
}

type loanMetric struct {
	Name           string  `json:"name"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TermMonths     int     `json:"termMonths"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(body))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	warnings := cfg.ValidateConfiguration()

	results := engine.New(h.logger).Calculate(*cfg)
	burnRate := costing.NewBurnRateCalculator(h.logger).Calculate(cfg.Project.Costs, cfg.Project.Production)

	response := calculateResponse{
		Results:  results,
		BurnRate: burnRate,
		Warnings: warnings,
	}

	if cfg.HasFinancialInput() {
		response.Health = buildHealthMetric(health.Evaluate(cfg.HealthInput()))
	}

	generator := loans.NewScheduleGenerator(h.logger)
	for _, loan := range cfg.LoanConfigs() {
		schedule := generator.GenerateSchedule(loan)
		if len(schedule) == 0 {
			continue
		}
		response.Loans = append(response.Loans, loanMetric{
			Name:           loan.Name,
			MonthlyPayment: schedule[0].Payment,
			TotalInterest:  loans.TotalInterest(schedule),
			TermMonths:     loan.TermMonths,
		})
	}

	elapsed := time.Since(start)
	response.Duration = elapsed.String()

	h.logger.Info("calculation computed",
		zap.String("op", "server.handleCalculate"),
		zap.Int("channels", len(response.Results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func buildHealthMetric(report health.Report) *healthMetric {
	metric := &healthMetric{
		NetCashflow:              report.NetCashflow,
		TotalMonthlyBurden:       report.TotalMonthlyBurden,
		MinUnitsPerDay:           report.MinUnitsPerDay,
		ProjectedMonthlyProfit:   report.ProjectedMonthlyProfit,
		ProjectedNetFreeCashflow: report.ProjectedNetFreeCashflow,
		TargetBufferAmount:       report.TargetBufferAmount,
		SavingsPercentage:        report.SavingsPercentage,
		Score:                    report.Score,
		Label:                    report.Label,
	}
	if report.BufferReachable() {
		months := report.MonthsToReachBuffer
		metric.MonthsToReachBuffer = &months
	}
	return metric
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.logger.Warn(message,
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
