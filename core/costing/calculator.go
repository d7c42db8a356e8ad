// Package costing implements the cost calculator: a pure function from a
// school/region profile, duration, tier, and fee schedule to a normalized
// cost breakdown. No I/O, no shared state, no side effects.
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

// Compute derives a cost breakdown normalized to the reporting currency.
//
// Tuition is prorated linearly by month. Living costs are computed per
// category (regional factors first, then the tier multiplier, then the
// month count). Ancillary fees are one-time; only discretionary entries
// scale with the tier. It fails fast with the first error encountered.
func Compute(
	school *types.SchoolProfile,
	region *types.RegionProfile,
	duration types.Duration,
	tier types.CostTier,
	fees types.FeeSchedule,
	rates types.RateTable,
	reporting types.Currency,
) (*types.CostBreakdown, error) {
	if err := duration.Validate(); err != nil {
		return nil, err
	}
	if !tier.IsValid() {
		return nil, errors.Input(fmt.Sprintf("unknown cost tier: %s", tier))
	}
	if err := checkCategories(region, fees); err != nil {
		return nil, err
	}

	months := decimal.NewFromInt(int64(duration.TotalMonths()))
	tierMult := tier.Multiplier()

	breakdown := &types.CostBreakdown{
		School:    school.Name,
		ShortName: school.ShortName,
		Currency:  reporting,
		Duration:  duration,
		Tier:      tier,
	}

	// Tuition: tuition_per_year x months/12, a partial year contributes
	// a proportional fraction.
	tuition, err := rates.Convert(school.TuitionPerYear.Mul(duration.YearsExact()), school.Currency, reporting)
	if err != nil {
		return nil, err
	}
	breakdown.Tuition = tuition
	breakdown.LineItems = append(breakdown.LineItems, types.LineItem{
		Kind:   types.LineTuition,
		Amount: tuition,
	})

	// Living cost per category. Regional factors adjust the cost
	// structure; the tier multiplier is a discretionary-spending
	// adjustment applied on top.
	living := decimal.Zero
	for _, cat := range types.AllCostCategories() {
		monthly := region.BaselinePerMonth.Mul(region.Share(cat)).Mul(region.Factor(cat))
		amount, err := rates.Convert(monthly.Mul(tierMult).Mul(months), region.Currency, reporting)
		if err != nil {
			return nil, err
		}
		living = living.Add(amount)
		breakdown.LineItems = append(breakdown.LineItems, types.LineItem{
			Kind:     types.LineLiving,
			Category: string(cat),
			Amount:   amount,
		})
	}
	breakdown.Living = living

	// Ancillary fees: one-time, independent of duration. Fixed categories
	// never scale with the tier.
	feeTotal := decimal.Zero
	for _, cat := range types.AllFeeCategories() {
		entry, ok := fees[cat]
		if !ok {
			continue
		}
		amount := entry.Amount
		if entry.Discretionary {
			amount = amount.Mul(tierMult)
		}
		amount, err := rates.Convert(amount, entry.Currency, reporting)
		if err != nil {
			return nil, err
		}
		feeTotal = feeTotal.Add(amount)
		breakdown.LineItems = append(breakdown.LineItems, types.LineItem{
			Kind:          types.LineFee,
			Category:      string(cat),
			Amount:        amount,
			Discretionary: entry.Discretionary,
		})
	}
	breakdown.Fees = feeTotal

	breakdown.Total = breakdown.Tuition.Add(breakdown.Living).Add(breakdown.Fees)
	return breakdown, nil
}

// checkCategories rejects region factors, region shares, or fee entries
// naming categories outside the closed sets.
func checkCategories(region *types.RegionProfile, fees types.FeeSchedule) error {
	for cat := range region.CategoryShares {
		if !cat.IsValid() {
			return errors.UnknownCategory("cost", string(cat))
		}
	}
	for cat := range region.CategoryFactors {
		if !cat.IsValid() {
			return errors.UnknownCategory("cost", string(cat))
		}
	}
	for cat := range fees {
		if !cat.IsValid() {
			return errors.UnknownCategory("fee", string(cat))
		}
	}
	return nil
}
