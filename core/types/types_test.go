package types

import (
	"testing"

	"github.com/shopspring/decimal"

	"abroad-cost/internal/errors"
)

func TestDurationValidate(t *testing.T) {
	tests := []struct {
		name    string
		d       Duration
		wantErr bool
	}{
		{name: "two years", d: Duration{Years: 2}, wantErr: false},
		{name: "two years six months", d: Duration{Years: 2, Months: 6}, wantErr: false},
		{name: "single month", d: Duration{Months: 1}, wantErr: false},
		{name: "zero duration", d: Duration{}, wantErr: true},
		{name: "negative years", d: Duration{Years: -1, Months: 6}, wantErr: true},
		{name: "month part too large", d: Duration{Years: 1, Months: 12}, wantErr: true},
		{name: "negative month part", d: Duration{Years: 1, Months: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsType(err, errors.TypeInvalidDuration) {
				t.Errorf("expected INVALID_DURATION, got %v", err)
			}
		})
	}
}

func TestDurationTotalMonths(t *testing.T) {
	d := Duration{Years: 2, Months: 6}
	if got := d.TotalMonths(); got != 30 {
		t.Errorf("TotalMonths() = %d, want 30", got)
	}
	if got := d.YearsExact(); !got.Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("YearsExact() = %s, want 2.5", got)
	}
}

func TestRateTableConvertRoundTrip(t *testing.T) {
	rates := RateTable{
		CurrencyUSD: decimal.NewFromInt(1),
		CurrencyEUR: decimal.RequireFromString("1.08"),
		CurrencyJPY: decimal.RequireFromString("0.0067"),
	}

	amounts := []string{"1", "1800", "26000", "0.03", "999999.99"}
	tolerance := decimal.New(1, -6)

	for _, raw := range amounts {
		amount := decimal.RequireFromString(raw)
		usd, err := rates.Convert(amount, CurrencyJPY, CurrencyUSD)
		if err != nil {
			t.Fatalf("convert to USD: %v", err)
		}
		back, err := rates.Convert(usd, CurrencyUSD, CurrencyJPY)
		if err != nil {
			t.Fatalf("convert back: %v", err)
		}

		// relative tolerance 1e-6
		drift := back.Sub(amount).Abs().Div(amount)
		if drift.GreaterThan(tolerance) {
			t.Errorf("round trip of %s drifted by %s", amount, drift)
		}
	}
}

func TestRateTableMissingRate(t *testing.T) {
	rates := RateTable{CurrencyUSD: decimal.NewFromInt(1)}

	_, err := rates.Convert(decimal.NewFromInt(100), CurrencyEUR, CurrencyUSD)
	if !errors.IsType(err, errors.TypeMissingRate) {
		t.Fatalf("expected MISSING_RATE, got %v", err)
	}

	_, err = rates.Convert(decimal.NewFromInt(100), CurrencyUSD, CurrencyGBP)
	if !errors.IsType(err, errors.TypeMissingRate) {
		t.Fatalf("expected MISSING_RATE for target currency, got %v", err)
	}
}

func TestRateTableSameCurrencyNeedsNoRate(t *testing.T) {
	rates := RateTable{}
	amount := decimal.NewFromInt(42)
	got, err := rates.Convert(amount, CurrencyEUR, CurrencyEUR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(amount) {
		t.Errorf("Convert() = %s, want %s", got, amount)
	}
}

func TestTierMultiplierOrdering(t *testing.T) {
	budget := TierBudget.Multiplier()
	standard := TierStandard.Multiplier()
	comfortable := TierComfortable.Multiplier()

	if budget.Sign() <= 0 {
		t.Errorf("budget multiplier must be positive, got %s", budget)
	}
	if budget.GreaterThan(standard) || standard.GreaterThan(comfortable) {
		t.Errorf("tier multipliers not ordered: %s, %s, %s", budget, standard, comfortable)
	}
}

func TestParseTierRejectsUnknown(t *testing.T) {
	if _, err := ParseTier("luxurious"); err == nil {
		t.Fatal("expected error for unknown tier")
	}
	tier, err := ParseTier("budget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier != TierBudget {
		t.Errorf("ParseTier() = %s, want %s", tier, TierBudget)
	}
}

func TestParseCountryRejectsUnknown(t *testing.T) {
	if _, err := ParseCountry("atlantis"); err == nil {
		t.Fatal("expected error for unknown country")
	}
	if _, err := ParseCountry("germany"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCanonicalSharesSumToOne(t *testing.T) {
	sum := decimal.Zero
	for _, cat := range AllCostCategories() {
		sum = sum.Add(CanonicalShares()[cat])
	}
	if !sum.Equal(decimal.NewFromInt(1)) {
		t.Errorf("canonical shares sum to %s, want 1", sum)
	}
}

func TestFeeCategoryDiscretionaryDefaults(t *testing.T) {
	fixed := []FeeCategory{FeeApplication, FeeVisaLegal, FeeInsuranceMedical}
	for _, cat := range fixed {
		if cat.Discretionary() {
			t.Errorf("%s should be fixed", cat)
		}
	}
	discretionary := []FeeCategory{FeeStudy, FeeJobSearch, FeeEmergency}
	for _, cat := range discretionary {
		if !cat.Discretionary() {
			t.Errorf("%s should be discretionary", cat)
		}
	}
}
