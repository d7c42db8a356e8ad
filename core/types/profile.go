// Package types - School and region profiles
package types

import "github.com/shopspring/decimal"

// SchoolProfile describes one school option. Immutable once loaded;
// owned by the catalog.
type SchoolProfile struct {
	// Name is the full school name and the identity used for ranking ties
	Name string `json:"name"`

	// ShortName is a compact label for tables
	ShortName string `json:"short_name"`

	// Country is the school's country
	Country Country `json:"country"`

	// Region references a RegionProfile in the catalog
	Region string `json:"region"`

	// Currency is the local currency tuition is quoted in
	Currency Currency `json:"currency"`

	// TuitionPerYear is the yearly tuition in local currency
	TuitionPerYear decimal.Decimal `json:"tuition_per_year"`

	// Ranking is informational only; nil means unranked, distinct from zero
	Ranking *int `json:"ranking,omitempty"`

	// WorkDurationLimit is the permitted post-study work period in years,
	// if the country caps it. Used by the projection engine.
	WorkDurationLimit *int `json:"work_duration_limit,omitempty"`

	// Description is optional free text
	Description string `json:"description,omitempty"`
}

// RegionProfile describes the living-cost structure of a region.
// Immutable once loaded.
type RegionProfile struct {
	// Country is the region's country
	Country Country `json:"country"`

	// Name is the region key schools reference
	Name string `json:"name"`

	// Currency is the local currency the baseline is quoted in
	Currency Currency `json:"currency"`

	// BaselinePerMonth is the total monthly living-cost baseline in
	// local currency
	BaselinePerMonth decimal.Decimal `json:"baseline_per_month"`

	// CategoryShares splits the baseline across cost categories.
	// Empty means the canonical share table applies. Shares must sum to 1.
	CategoryShares map[CostCategory]decimal.Decimal `json:"category_shares,omitempty"`

	// CategoryFactors scales each category's share of the baseline.
	// A missing category means factor 1.0.
	CategoryFactors map[CostCategory]decimal.Decimal `json:"category_factors,omitempty"`
}

// Share returns the baseline share for a category
func (r RegionProfile) Share(c CostCategory) decimal.Decimal {
	if len(r.CategoryShares) > 0 {
		if s, ok := r.CategoryShares[c]; ok {
			return s
		}
		return decimal.Zero
	}
	return CanonicalShares()[c]
}

// Factor returns the regional multiplier for a category, defaulting to 1.0
func (r RegionProfile) Factor(c CostCategory) decimal.Decimal {
	if f, ok := r.CategoryFactors[c]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}

// FeeEntry is one ancillary fee default for a country
type FeeEntry struct {
	// Amount is the one-time default cost in local currency
	Amount decimal.Decimal `json:"amount"`

	// Currency is the local currency of the amount
	Currency Currency `json:"currency"`

	// Discretionary marks whether the fee scales with cost tier
	Discretionary bool `json:"discretionary"`
}

// FeeSchedule maps fee categories to their per-country defaults
type FeeSchedule map[FeeCategory]FeeEntry
