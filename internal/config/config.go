// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"abroad-cost/core/types"
	"abroad-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// ReportingCurrency is the currency all figures are normalized to
	ReportingCurrency types.Currency `json:"reporting_currency"`

	// Defaults contains calculation defaults
	Defaults DefaultsConfig `json:"defaults"`

	// Opportunity contains the domestic reference profile
	Opportunity OpportunityConfig `json:"opportunity"`

	// Projection contains projection engine settings
	Projection ProjectionConfig `json:"projection"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DefaultsConfig contains calculation defaults
type DefaultsConfig struct {
	// DurationYears is the default study duration's year part
	DurationYears int `json:"duration_years"`

	// DurationMonths is the default study duration's month part
	DurationMonths int `json:"duration_months"`

	// Tier is the default cost tier
	Tier types.CostTier `json:"tier"`
}

// Duration returns the default study duration
func (d DefaultsConfig) Duration() types.Duration {
	return types.Duration{Years: d.DurationYears, Months: d.DurationMonths}
}

// OpportunityConfig contains the domestic reference profile used for
// opportunity-cost and stay-home projections
type OpportunityConfig struct {
	// SalaryByTier maps seniority tiers to reference annual salaries
	SalaryByTier map[types.SeniorityTier]decimal.Decimal `json:"salary_by_tier"`

	// Seniority is the default seniority tier
	Seniority types.SeniorityTier `json:"seniority"`

	// TaxRate is the combined domestic tax rate
	TaxRate decimal.Decimal `json:"tax_rate"`

	// LivingCost is the annual domestic living cost
	LivingCost decimal.Decimal `json:"living_cost"`

	// SalaryGrowth is the annual salary growth rate (projection only)
	SalaryGrowth decimal.Decimal `json:"salary_growth"`

	// LivingCostGrowth is the annual living-cost growth rate (projection only)
	LivingCostGrowth decimal.Decimal `json:"living_cost_growth"`

	// Currency is the currency the reference figures are quoted in
	Currency types.Currency `json:"currency"`
}

// Input builds the opportunity-cost engine input
func (o OpportunityConfig) Input() types.OpportunityCostInput {
	return types.OpportunityCostInput{
		SalaryByTier:       o.SalaryByTier,
		Seniority:          o.Seniority,
		TaxRate:            o.TaxRate,
		DomesticLivingCost: o.LivingCost,
		Currency:           o.Currency,
	}
}

// ProjectionConfig contains projection engine settings
type ProjectionConfig struct {
	// InvestmentReturnRate is the annualized return on invested savings
	InvestmentReturnRate decimal.Decimal `json:"investment_return_rate"`

	// InvestmentPortion is the share of disposable income invested
	InvestmentPortion decimal.Decimal `json:"investment_portion"`

	// HorizonYears is the number of years simulated
	HorizonYears int `json:"horizon_years"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:           "1.0",
		ReportingCurrency: types.CurrencyUSD,
		Defaults: DefaultsConfig{
			DurationYears:  2,
			DurationMonths: 0,
			Tier:           types.TierStandard,
		},
		Opportunity: OpportunityConfig{
			SalaryByTier: map[types.SeniorityTier]decimal.Decimal{
				types.SeniorityJunior: decimal.NewFromInt(38000),
				types.SeniorityMid:    decimal.NewFromInt(52000),
				types.SenioritySenior: decimal.NewFromInt(74000),
			},
			Seniority:        types.SeniorityMid,
			TaxRate:          decimal.NewFromFloat(0.282),
			LivingCost:       decimal.NewFromInt(12700),
			SalaryGrowth:     decimal.NewFromFloat(0.05),
			LivingCostGrowth: decimal.NewFromFloat(0.03),
			Currency:         types.CurrencyUSD,
		},
		Projection: ProjectionConfig{
			InvestmentReturnRate: decimal.NewFromFloat(0.10),
			InvestmentPortion:    decimal.NewFromFloat(0.20),
			HorizonYears:         10,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
