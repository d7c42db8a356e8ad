// Package compare ranks multiple school options by estimated total cost.
// A failing school never aborts the comparison; it is carried as an
// annotated failure so the rest of the report survives.
package compare

import (
	"fmt"
	"sort"

	"abroad-cost/core/catalog"
	"abroad-cost/core/costing"
	"abroad-cost/core/opportunity"
	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

// Candidate pairs a school with its resolved region and fee schedule.
// A candidate whose resolution failed carries the error instead.
type Candidate struct {
	// Name is the school name, always set
	Name string

	// School is the resolved school profile
	School *types.SchoolProfile

	// Region is the school's resolved region
	Region *types.RegionProfile

	// Fees is the school country's fee schedule
	Fees types.FeeSchedule

	// ResolveErr records a catalog resolution failure for this candidate
	ResolveErr error
}

// Gather resolves school names against a catalog into candidates.
// Resolution failures (unknown school, missing region) become candidate
// errors rather than aborting the gather. An empty name list selects the
// whole catalog.
func Gather(cat *catalog.Catalog, names []string) []Candidate {
	if len(names) == 0 {
		for _, school := range cat.Schools() {
			names = append(names, school.Name)
		}
	}

	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		school, region, fees, err := cat.Resolve(name)
		if err != nil {
			candidates = append(candidates, Candidate{Name: name, ResolveErr: err})
			continue
		}
		candidates = append(candidates, Candidate{
			Name:   name,
			School: school,
			Region: region,
			Fees:   fees,
		})
	}
	return candidates
}

// Compare runs the cost calculator over every candidate and ranks the
// successes ascending by total cost, breaking ties by school name so
// repeated runs on identical input produce identical ordering.
//
// When an opportunity input is supplied it is computed once (it is
// duration-dependent but profile-independent) and attached to every
// successful entry; an opportunity failure fails the whole comparison
// since the request cannot be partially honored.
//
// Duration and tier are global inputs, validated once up front rather
// than surfacing as a failure per school.
func Compare(
	candidates []Candidate,
	duration types.Duration,
	tier types.CostTier,
	rates types.RateTable,
	reporting types.Currency,
	oppInput *types.OpportunityCostInput,
) (*types.RankedComparison, error) {
	if err := duration.Validate(); err != nil {
		return nil, err
	}
	if !tier.IsValid() {
		return nil, errors.Input(fmt.Sprintf("unknown cost tier: %s", tier))
	}

	var oppResult *types.OpportunityCostResult
	if oppInput != nil {
		result, err := opportunity.Compute(*oppInput, duration, rates, reporting)
		if err != nil {
			return nil, err
		}
		oppResult = result
	}

	comparison := &types.RankedComparison{
		Currency: reporting,
		Duration: duration,
		Tier:     tier,
	}

	for _, candidate := range candidates {
		if candidate.ResolveErr != nil {
			comparison.Failures = append(comparison.Failures, types.ComparisonFailure{
				School: candidate.Name,
				Reason: candidate.ResolveErr.Error(),
				Err:    candidate.ResolveErr,
			})
			continue
		}

		breakdown, err := costing.Compute(candidate.School, candidate.Region, duration, tier, candidate.Fees, rates, reporting)
		if err != nil {
			comparison.Failures = append(comparison.Failures, types.ComparisonFailure{
				School: candidate.Name,
				Reason: err.Error(),
				Err:    err,
			})
			continue
		}

		comparison.Entries = append(comparison.Entries, types.ComparisonEntry{
			School:      candidate.School.Name,
			ShortName:   candidate.School.ShortName,
			Breakdown:   breakdown,
			Opportunity: oppResult,
		})
	}

	sort.Slice(comparison.Entries, func(i, j int) bool {
		a, b := comparison.Entries[i], comparison.Entries[j]
		if !a.Breakdown.Total.Equal(b.Breakdown.Total) {
			return a.Breakdown.Total.LessThan(b.Breakdown.Total)
		}
		return a.School < b.School
	})
	sort.Slice(comparison.Failures, func(i, j int) bool {
		return comparison.Failures[i].School < comparison.Failures[j].School
	})

	return comparison, nil
}
