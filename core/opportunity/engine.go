// Package opportunity computes the opportunity cost of studying abroad:
// the net domestic savings forgone over the study duration.
package opportunity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

// Compute derives the forgone net savings for a duration, normalized to
// the reporting currency.
//
// Net annual savings = salary x (1 - tax_rate) - domestic living cost.
// A negative result means staying home would also lose money; it is
// surfaced as-is, never clamped to zero.
func Compute(
	input types.OpportunityCostInput,
	duration types.Duration,
	rates types.RateTable,
	reporting types.Currency,
) (*types.OpportunityCostResult, error) {
	if err := duration.Validate(); err != nil {
		return nil, err
	}
	if !input.Seniority.IsValid() {
		return nil, errors.Input(fmt.Sprintf("unknown seniority tier: %s", input.Seniority))
	}
	salary, ok := input.SalaryByTier[input.Seniority]
	if !ok {
		return nil, errors.Input(fmt.Sprintf("no reference salary for seniority tier: %s", input.Seniority))
	}

	one := decimal.NewFromInt(1)
	netAnnual := salary.Mul(one.Sub(input.TaxRate)).Sub(input.DomesticLivingCost)

	netAnnual, err := rates.Convert(netAnnual, input.Currency, reporting)
	if err != nil {
		return nil, err
	}

	return &types.OpportunityCostResult{
		NetAnnualSavings: netAnnual,
		Total:            netAnnual.Mul(duration.YearsExact()),
		Currency:         reporting,
		Duration:         duration,
	}, nil
}
