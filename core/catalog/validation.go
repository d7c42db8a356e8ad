// Package catalog - Catalog validation
// Ensures catalog integrity before any calculation runs.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// shareTolerance bounds how far region shares may drift from summing to 1
var shareTolerance = decimal.New(1, -9)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Catalog) []error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateSchools,
		validateRegions,
		validateFees,
	}
}

// Validate checks the catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error
	for _, rule := range rules {
		errs = append(errs, rule(c)...)
	}
	return errs
}

// validateSchools checks school integrity: known country, resolvable
// region, positive tuition, and a conversion rate for the currency
func validateSchools(c *Catalog) []error {
	var errs []error
	for _, school := range c.Schools() {
		if !school.Country.IsValid() {
			errs = append(errs, fmt.Errorf("school %q: unknown country %q", school.Name, school.Country))
		}
		if _, err := c.Region(school.Region); err != nil {
			errs = append(errs, fmt.Errorf("school %q: %w", school.Name, err))
		}
		if school.TuitionPerYear.Sign() <= 0 {
			errs = append(errs, fmt.Errorf("school %q: tuition must be positive, got %s", school.Name, school.TuitionPerYear))
		}
		if _, err := c.rates.Rate(school.Currency); err != nil {
			errs = append(errs, fmt.Errorf("school %q: %w", school.Name, err))
		}
	}
	return errs
}

// validateRegions checks region integrity: known categories, shares that
// sum to 1, a positive baseline, and a conversion rate for the currency
func validateRegions(c *Catalog) []error {
	var errs []error
	for name, region := range c.regions {
		if !region.Country.IsValid() {
			errs = append(errs, fmt.Errorf("region %q: unknown country %q", name, region.Country))
		}
		if region.BaselinePerMonth.Sign() <= 0 {
			errs = append(errs, fmt.Errorf("region %q: baseline must be positive, got %s", name, region.BaselinePerMonth))
		}
		if _, err := c.rates.Rate(region.Currency); err != nil {
			errs = append(errs, fmt.Errorf("region %q: %w", name, err))
		}
		for cat := range region.CategoryFactors {
			if !cat.IsValid() {
				errs = append(errs, fmt.Errorf("region %q: unknown cost category %q", name, cat))
			}
		}
		if len(region.CategoryShares) > 0 {
			sum := decimal.Zero
			for cat, share := range region.CategoryShares {
				if !cat.IsValid() {
					errs = append(errs, fmt.Errorf("region %q: unknown cost category %q", name, cat))
				}
				sum = sum.Add(share)
			}
			if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(shareTolerance) {
				errs = append(errs, fmt.Errorf("region %q: category shares sum to %s, want 1", name, sum))
			}
		}
	}
	return errs
}

// validateFees checks fee schedule integrity: known categories,
// non-negative amounts, and a conversion rate for each entry's currency
func validateFees(c *Catalog) []error {
	var errs []error
	for country, schedule := range c.fees {
		if !country.IsValid() {
			errs = append(errs, fmt.Errorf("fees for unknown country %q", country))
		}
		for cat, entry := range schedule {
			if !cat.IsValid() {
				errs = append(errs, fmt.Errorf("fees for %q: unknown fee category %q", country, cat))
			}
			if entry.Amount.Sign() < 0 {
				errs = append(errs, fmt.Errorf("fees for %q: %s amount must not be negative, got %s", country, cat, entry.Amount))
			}
			if _, err := c.rates.Rate(entry.Currency); err != nil {
				errs = append(errs, fmt.Errorf("fees for %q: %s: %w", country, cat, err))
			}
		}
	}
	return errs
}
