package costing

import (
	"testing"

	"github.com/shopspring/decimal"

	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

func usdRates() types.RateTable {
	return types.RateTable{
		types.CurrencyUSD: decimal.NewFromInt(1),
		types.CurrencyEUR: decimal.RequireFromString("1.08"),
	}
}

func testSchool() *types.SchoolProfile {
	return &types.SchoolProfile{
		Name:           "Arizona State University",
		ShortName:      "ASU",
		Country:        types.CountryUS,
		Region:         "phoenix",
		Currency:       types.CurrencyUSD,
		TuitionPerYear: decimal.NewFromInt(26000),
	}
}

func testRegion() *types.RegionProfile {
	return &types.RegionProfile{
		Country:          types.CountryUS,
		Name:             "phoenix",
		Currency:         types.CurrencyUSD,
		BaselinePerMonth: decimal.NewFromInt(1800),
	}
}

// Reference scenario: tuition 26000/yr, baseline 1800/mo, all factors 1.0,
// standard tier, 2 years, no fees: 26000*2 + 1800*24 = 95200.
func TestComputeBaseScenario(t *testing.T) {
	breakdown, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2},
		types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.NewFromInt(52000); !breakdown.Tuition.Equal(want) {
		t.Errorf("Tuition = %s, want %s", breakdown.Tuition, want)
	}
	if want := decimal.NewFromInt(43200); !breakdown.Living.Equal(want) {
		t.Errorf("Living = %s, want %s", breakdown.Living, want)
	}
	if !breakdown.Fees.IsZero() {
		t.Errorf("Fees = %s, want 0", breakdown.Fees)
	}
	if want := decimal.NewFromInt(95200); !breakdown.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", breakdown.Total, want)
	}
}

// A partial year contributes a proportional fraction, never a rounded one:
// 2y6m of 26000/yr tuition is exactly 65000.
func TestComputeProratesPartialYears(t *testing.T) {
	breakdown, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2, Months: 6},
		types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := decimal.NewFromInt(65000); !breakdown.Tuition.Equal(want) {
		t.Errorf("Tuition = %s, want %s", breakdown.Tuition, want)
	}
}

// Total must equal tuition + living + fees exactly.
func TestComputeAdditivity(t *testing.T) {
	fees := types.FeeSchedule{
		types.FeeVisaLegal: {Amount: decimal.NewFromInt(500), Currency: types.CurrencyUSD},
		types.FeeStudy:     {Amount: decimal.NewFromInt(900), Currency: types.CurrencyUSD, Discretionary: true},
	}
	breakdown, err := Compute(testSchool(), testRegion(), types.Duration{Years: 1, Months: 3},
		types.TierComfortable, fees, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := breakdown.Tuition.Add(breakdown.Living).Add(breakdown.Fees)
	if !breakdown.Total.Equal(sum) {
		t.Errorf("Total = %s, components sum to %s", breakdown.Total, sum)
	}

	itemSum := decimal.Zero
	for _, item := range breakdown.LineItems {
		itemSum = itemSum.Add(item.Amount)
	}
	if !breakdown.Total.Equal(itemSum) {
		t.Errorf("Total = %s, line items sum to %s", breakdown.Total, itemSum)
	}
}

// Tuition and living costs are monotonically non-decreasing in duration.
func TestComputeMonotonicInDuration(t *testing.T) {
	durations := []types.Duration{
		{Months: 6},
		{Years: 1},
		{Years: 1, Months: 6},
		{Years: 2},
		{Years: 3, Months: 11},
	}

	prev := decimal.NewFromInt(-1)
	prevLiving := decimal.NewFromInt(-1)
	for _, d := range durations {
		breakdown, err := Compute(testSchool(), testRegion(), d,
			types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", d, err)
		}
		if breakdown.Tuition.LessThan(prev) {
			t.Errorf("%s: tuition %s decreased below %s", d, breakdown.Tuition, prev)
		}
		if breakdown.Living.LessThan(prevLiving) {
			t.Errorf("%s: living %s decreased below %s", d, breakdown.Living, prevLiving)
		}
		prev = breakdown.Tuition
		prevLiving = breakdown.Living
	}
}

// Budget <= Standard <= Comfortable for identical inputs; strict when
// discretionary fees are non-zero.
func TestComputeTierOrdering(t *testing.T) {
	fees := types.FeeSchedule{
		types.FeeVisaLegal: {Amount: decimal.NewFromInt(500), Currency: types.CurrencyUSD},
		types.FeeEmergency: {Amount: decimal.NewFromInt(1000), Currency: types.CurrencyUSD, Discretionary: true},
	}

	totals := make(map[types.CostTier]decimal.Decimal)
	fixedFee := make(map[types.CostTier]decimal.Decimal)
	for _, tier := range []types.CostTier{types.TierBudget, types.TierStandard, types.TierComfortable} {
		breakdown, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2},
			tier, fees, usdRates(), types.CurrencyUSD)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tier, err)
		}
		totals[tier] = breakdown.Total
		for _, item := range breakdown.LineItems {
			if item.Kind == types.LineFee && item.Category == string(types.FeeVisaLegal) {
				fixedFee[tier] = item.Amount
			}
		}
	}

	if !totals[types.TierBudget].LessThan(totals[types.TierStandard]) {
		t.Errorf("budget %s not below standard %s", totals[types.TierBudget], totals[types.TierStandard])
	}
	if !totals[types.TierStandard].LessThan(totals[types.TierComfortable]) {
		t.Errorf("standard %s not below comfortable %s", totals[types.TierStandard], totals[types.TierComfortable])
	}

	// Fixed categories reflect regulatory costs and must not scale.
	want := decimal.NewFromInt(500)
	for tier, amount := range fixedFee {
		if !amount.Equal(want) {
			t.Errorf("%s: fixed fee scaled to %s", tier, amount)
		}
	}
}

// Regional category factors apply before tier scaling.
func TestComputeCategoryFactors(t *testing.T) {
	region := testRegion()
	region.CategoryFactors = map[types.CostCategory]decimal.Decimal{
		types.CostHousing: decimal.RequireFromString("1.5"),
	}

	breakdown, err := Compute(testSchool(), region, types.Duration{Years: 1},
		types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// housing: 1800 * 0.40 * 1.5 * 12 = 12960; others unchanged.
	// total living: 43200*... = 1800*12 + 1800*0.40*0.5*12 = 21600 + 4320
	want := decimal.NewFromInt(25920)
	if !breakdown.Living.Equal(want) {
		t.Errorf("Living = %s, want %s", breakdown.Living, want)
	}
}

func TestComputeCurrencyNormalization(t *testing.T) {
	school := testSchool()
	school.Currency = types.CurrencyEUR
	school.TuitionPerYear = decimal.NewFromInt(10000)

	breakdown, err := Compute(school, testRegion(), types.Duration{Years: 1},
		types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := decimal.NewFromInt(10800); !breakdown.Tuition.Equal(want) {
		t.Errorf("Tuition = %s, want %s", breakdown.Tuition, want)
	}
}

func TestComputeErrors(t *testing.T) {
	t.Run("invalid duration", func(t *testing.T) {
		_, err := Compute(testSchool(), testRegion(), types.Duration{},
			types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
		if !errors.IsType(err, errors.TypeInvalidDuration) {
			t.Fatalf("expected INVALID_DURATION, got %v", err)
		}
	})

	t.Run("missing rate is never a silent 1.0", func(t *testing.T) {
		school := testSchool()
		school.Currency = types.CurrencyJPY
		_, err := Compute(school, testRegion(), types.Duration{Years: 2},
			types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
		if !errors.IsType(err, errors.TypeMissingRate) {
			t.Fatalf("expected MISSING_RATE, got %v", err)
		}
	})

	t.Run("unknown fee category", func(t *testing.T) {
		fees := types.FeeSchedule{
			types.FeeCategory("bribes"): {Amount: decimal.NewFromInt(1), Currency: types.CurrencyUSD},
		}
		_, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2},
			types.TierStandard, fees, usdRates(), types.CurrencyUSD)
		if !errors.IsType(err, errors.TypeUnknownCategory) {
			t.Fatalf("expected UNKNOWN_COST_CATEGORY, got %v", err)
		}
	})

	t.Run("unknown region factor category", func(t *testing.T) {
		region := testRegion()
		region.CategoryFactors = map[types.CostCategory]decimal.Decimal{
			types.CostCategory("yachts"): decimal.NewFromInt(2),
		}
		_, err := Compute(testSchool(), region, types.Duration{Years: 2},
			types.TierStandard, types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
		if !errors.IsType(err, errors.TypeUnknownCategory) {
			t.Fatalf("expected UNKNOWN_COST_CATEGORY, got %v", err)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2},
			types.CostTier("luxurious"), types.FeeSchedule{}, usdRates(), types.CurrencyUSD)
		if !errors.IsType(err, errors.TypeInput) {
			t.Fatalf("expected INPUT_ERROR, got %v", err)
		}
	})
}

// Repeated invocation with identical inputs yields identical output.
func TestComputeIdempotent(t *testing.T) {
	fees := types.FeeSchedule{
		types.FeeStudy: {Amount: decimal.NewFromInt(900), Currency: types.CurrencyUSD, Discretionary: true},
	}
	first, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2, Months: 3},
		types.TierComfortable, fees, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute(testSchool(), testRegion(), types.Duration{Years: 2, Months: 3},
		types.TierComfortable, fees, usdRates(), types.CurrencyUSD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.Total.Equal(second.Total) {
		t.Errorf("totals differ: %s vs %s", first.Total, second.Total)
	}
	if len(first.LineItems) != len(second.LineItems) {
		t.Fatalf("line item counts differ: %d vs %d", len(first.LineItems), len(second.LineItems))
	}
	for i := range first.LineItems {
		if !first.LineItems[i].Amount.Equal(second.LineItems[i].Amount) {
			t.Errorf("line item %d differs: %s vs %s", i, first.LineItems[i].Amount, second.LineItems[i].Amount)
		}
	}
}
