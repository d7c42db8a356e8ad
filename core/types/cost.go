// Package types - Cost tier and computed cost output types
package types

import (
	"fmt"

	"github.com/shopspring/decimal"

	"abroad-cost/internal/errors"
)

// CostTier is a named consumption-level preset scaling discretionary costs
type CostTier string

const (
	TierBudget      CostTier = "budget"
	TierStandard    CostTier = "standard"
	TierComfortable CostTier = "comfortable"
)

// String returns the string representation
func (t CostTier) String() string {
	return string(t)
}

// IsValid checks if the tier is a known tier
func (t CostTier) IsValid() bool {
	switch t {
	case TierBudget, TierStandard, TierComfortable:
		return true
	default:
		return false
	}
}

// Multiplier returns the tier's scalar applied to living costs and
// discretionary fees. Budget <= Standard <= Comfortable, all positive.
func (t CostTier) Multiplier() decimal.Decimal {
	switch t {
	case TierBudget:
		return decimal.NewFromFloat(0.80)
	case TierComfortable:
		return decimal.NewFromFloat(1.30)
	default:
		return decimal.NewFromInt(1)
	}
}

// ParseTier converts a string into a CostTier, rejecting unknown names
func ParseTier(s string) (CostTier, error) {
	t := CostTier(s)
	if !t.IsValid() {
		return "", errors.Input(fmt.Sprintf("unknown cost tier: %s", s))
	}
	return t, nil
}

// LineItemKind classifies a breakdown line item
type LineItemKind string

const (
	LineTuition LineItemKind = "tuition"
	LineLiving  LineItemKind = "living"
	LineFee     LineItemKind = "fee"
)

// LineItem is one normalized component of a cost breakdown
type LineItem struct {
	// Kind is the component class
	Kind LineItemKind `json:"kind"`

	// Category names the living-cost or fee category; empty for tuition
	Category string `json:"category,omitempty"`

	// Amount is the cost in the reporting currency
	Amount decimal.Decimal `json:"amount"`

	// Discretionary marks fee items that scaled with the tier
	Discretionary bool `json:"discretionary,omitempty"`
}

// CostBreakdown is the computed cost of one school option, normalized to
// the reporting currency. Read-only result, never persisted.
type CostBreakdown struct {
	// School is the full school name
	School string `json:"school"`

	// ShortName is the school's compact label
	ShortName string `json:"short_name"`

	// Currency is the reporting currency all figures are normalized to
	Currency Currency `json:"currency"`

	// Duration is the study duration the costs cover
	Duration Duration `json:"duration"`

	// Tier is the cost tier the breakdown was computed for
	Tier CostTier `json:"tier"`

	// Tuition is the prorated tuition component
	Tuition decimal.Decimal `json:"tuition"`

	// Living is the per-category living-cost component, summed
	Living decimal.Decimal `json:"living"`

	// Fees is the one-time ancillary fee subtotal
	Fees decimal.Decimal `json:"fees"`

	// Total is tuition + living + fees
	Total decimal.Decimal `json:"total"`

	// LineItems lists every component in deterministic order
	LineItems []LineItem `json:"line_items"`
}

// OpportunityCostInput is the reference domestic profile forgone by studying
type OpportunityCostInput struct {
	// SalaryByTier maps seniority tiers to reference annual salaries
	SalaryByTier map[SeniorityTier]decimal.Decimal `json:"salary_by_tier"`

	// Seniority selects the salary tier to compare against
	Seniority SeniorityTier `json:"seniority"`

	// TaxRate is the combined tax rate on the reference salary
	TaxRate decimal.Decimal `json:"tax_rate"`

	// DomesticLivingCost is the annual domestic living cost
	DomesticLivingCost decimal.Decimal `json:"domestic_living_cost"`

	// Currency is the currency the salary and living cost are quoted in
	Currency Currency `json:"currency"`
}

// OpportunityCostResult is the forgone net savings over the study duration,
// normalized to the reporting currency. Negative values are surfaced as-is:
// a money-losing domestic baseline is a legitimate warning case.
type OpportunityCostResult struct {
	// NetAnnualSavings is salary x (1 - tax) - living, per year
	NetAnnualSavings decimal.Decimal `json:"net_annual_savings"`

	// Total is the forgone savings over the whole duration
	Total decimal.Decimal `json:"total"`

	// Currency is the reporting currency
	Currency Currency `json:"currency"`

	// Duration is the duration the total covers
	Duration Duration `json:"duration"`
}

// ComparisonEntry is one successfully ranked school
type ComparisonEntry struct {
	// School is the full school name
	School string `json:"school"`

	// ShortName is the school's compact label
	ShortName string `json:"short_name"`

	// Breakdown is the school's cost breakdown
	Breakdown *CostBreakdown `json:"breakdown"`

	// Opportunity is attached when an opportunity input was supplied;
	// it is identical for every entry of the same comparison
	Opportunity *OpportunityCostResult `json:"opportunity,omitempty"`
}

// ComparisonFailure annotates a school whose calculation failed
type ComparisonFailure struct {
	// School is the full school name
	School string `json:"school"`

	// Reason is the rendered error message
	Reason string `json:"reason"`

	// Err is the underlying error
	Err error `json:"-"`
}

// RankedComparison is the ordered result of comparing multiple schools,
// ascending by total cost with name tie-breaks. Failed schools are carried
// as annotations, never silently dropped.
type RankedComparison struct {
	// Currency is the reporting currency
	Currency Currency `json:"currency"`

	// Duration is the study duration compared over
	Duration Duration `json:"duration"`

	// Tier is the cost tier compared at
	Tier CostTier `json:"tier"`

	// Entries are the ranked successes, cheapest first
	Entries []ComparisonEntry `json:"entries"`

	// Failures are the per-school failure annotations, sorted by name
	Failures []ComparisonFailure `json:"failures,omitempty"`
}
