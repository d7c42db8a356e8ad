// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// the small amount of arithmetic the types themselves own.
package types

import (
	"fmt"

	"github.com/shopspring/decimal"

	"abroad-cost/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCNY Currency = "CNY"
	CurrencyJPY Currency = "JPY"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencySGD Currency = "SGD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Country identifies a country in the hand-curated catalog
type Country string

const (
	CountryUS          Country = "us"
	CountryUK          Country = "uk"
	CountryCanada      Country = "canada"
	CountryAustralia   Country = "australia"
	CountryGermany     Country = "germany"
	CountryNetherlands Country = "netherlands"
	CountryJapan       Country = "japan"
	CountrySingapore   Country = "singapore"
	CountryChina       Country = "china"
)

// String returns the string representation
func (c Country) String() string {
	return string(c)
}

// IsValid checks if the country is a known country
func (c Country) IsValid() bool {
	switch c {
	case CountryUS, CountryUK, CountryCanada, CountryAustralia,
		CountryGermany, CountryNetherlands, CountryJapan,
		CountrySingapore, CountryChina:
		return true
	default:
		return false
	}
}

// ParseCountry converts a string into a Country, rejecting unknown names
func ParseCountry(s string) (Country, error) {
	c := Country(s)
	if !c.IsValid() {
		return "", errors.Input(fmt.Sprintf("unknown country: %s", s))
	}
	return c, nil
}

// RateTable maps a currency code to its USD conversion factor.
// One unit of the keyed currency equals rate units of USD.
type RateTable map[Currency]decimal.Decimal

// Rate returns the USD factor for a currency
func (r RateTable) Rate(c Currency) (decimal.Decimal, error) {
	rate, ok := r[c]
	if !ok {
		return decimal.Zero, errors.MissingRate(string(c))
	}
	if rate.Sign() <= 0 {
		return decimal.Zero, errors.Input(fmt.Sprintf("non-positive rate for currency: %s", c))
	}
	return rate, nil
}

// Convert normalizes an amount from one currency to another via USD.
// A missing rate on either side is an error, never a silent 1.0.
func (r RateTable) Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	fromRate, err := r.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := r.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(fromRate).Div(toRate), nil
}

// Duration is a study duration of whole years plus additional whole months
type Duration struct {
	// Years is the whole-year part
	Years int `json:"years"`

	// Months is the additional month part, in [0,11]
	Months int `json:"months"`
}

// TotalMonths returns the duration in months
func (d Duration) TotalMonths() int {
	return d.Years*12 + d.Months
}

// YearsExact returns the duration in years as an exact fraction of months
func (d Duration) YearsExact() decimal.Decimal {
	return decimal.NewFromInt(int64(d.TotalMonths())).Div(decimal.NewFromInt(12))
}

// Validate checks the duration invariants
func (d Duration) Validate() error {
	if d.Months < 0 || d.Months > 11 {
		return errors.InvalidDuration(fmt.Sprintf("month part must be in [0,11], got %d", d.Months))
	}
	if d.TotalMonths() <= 0 {
		return errors.InvalidDuration(fmt.Sprintf("total months must be positive, got %d", d.TotalMonths()))
	}
	return nil
}

// String returns a compact representation like "2y6m"
func (d Duration) String() string {
	return fmt.Sprintf("%dy%dm", d.Years, d.Months)
}

// SeniorityTier classifies the reference domestic salary level
type SeniorityTier string

const (
	SeniorityJunior SeniorityTier = "junior"
	SeniorityMid    SeniorityTier = "mid"
	SenioritySenior SeniorityTier = "senior"
)

// IsValid checks if the seniority tier is known
func (s SeniorityTier) IsValid() bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior:
		return true
	default:
		return false
	}
}
