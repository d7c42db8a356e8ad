// Package projection simulates year-by-year finances of a career path
// (study abroad, then work; or keep working at home) over an analysis
// horizon, and compares two paths: net worth per year, final ROI, and the
// breakeven year where one path catches up with the other.
package projection

import (
	"github.com/shopspring/decimal"

	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

// PathParams describes one career path
type PathParams struct {
	// Name labels the path in comparisons
	Name string `json:"name"`

	// WorkStartDelay is the number of years before income starts
	// (the study duration for an education path, zero for a work path)
	WorkStartDelay int `json:"work_start_delay"`

	// WorkDurationLimit caps the working years; nil means unlimited
	WorkDurationLimit *int `json:"work_duration_limit,omitempty"`

	// InitialSalary is the first working year's gross salary
	InitialSalary decimal.Decimal `json:"initial_salary"`

	// SalaryGrowthRate compounds the salary per working year
	SalaryGrowthRate decimal.Decimal `json:"salary_growth_rate"`

	// LivingCost is the first year's annual living cost
	LivingCost decimal.Decimal `json:"living_cost"`

	// LivingCostGrowth compounds the living cost per calendar year
	LivingCostGrowth decimal.Decimal `json:"living_cost_growth"`

	// TaxRate is the combined tax rate on gross salary
	TaxRate decimal.Decimal `json:"tax_rate"`

	// TotalCost is the full study cost; nil for paths without one
	TotalCost *decimal.Decimal `json:"total_cost,omitempty"`

	// CostDuration is the number of years the study cost is spread over
	CostDuration *int `json:"cost_duration,omitempty"`

	// FirstYearOpportunityCost is an extra amount invested in year one
	FirstYearOpportunityCost *decimal.Decimal `json:"first_year_opportunity_cost,omitempty"`
}

// YearlyDatum is one simulated year of a path
type YearlyDatum struct {
	Year             int              `json:"year"`
	WorkYear         *int             `json:"work_year,omitempty"`
	Income           decimal.Decimal  `json:"income"`
	NetIncome        decimal.Decimal  `json:"net_income"`
	LivingCost       decimal.Decimal  `json:"living_cost"`
	StudyCost        decimal.Decimal  `json:"study_cost"`
	Disposable       decimal.Decimal  `json:"disposable"`
	CashSavings      decimal.Decimal  `json:"cash_savings"`
	InvestmentAmount decimal.Decimal  `json:"investment_amount"`
	InvestmentReturn decimal.Decimal  `json:"investment_return"`
	TotalInvestment  decimal.Decimal  `json:"total_investment"`
	TotalCash        decimal.Decimal  `json:"total_cash"`
	NetWorth         decimal.Decimal  `json:"net_worth"`
}

// ComparisonYear pairs the two paths' data for one year
type ComparisonYear struct {
	Year int         `json:"year"`
	A    YearlyDatum `json:"a"`
	B    YearlyDatum `json:"b"`
}

// PathComparison is the full two-path comparison
type PathComparison struct {
	AName string `json:"a_name"`
	BName string `json:"b_name"`

	Years []ComparisonYear `json:"years"`

	// FinalROIA/B are final-year returns relative to each path's cost basis
	FinalROIA decimal.Decimal `json:"final_roi_a"`
	FinalROIB decimal.Decimal `json:"final_roi_b"`

	// BreakevenYear is the first year path A's net worth reaches path B's;
	// nil when it never happens within the horizon
	BreakevenYear *int `json:"breakeven_year,omitempty"`
}

// Projector holds the simulation settings
type Projector struct {
	// InvestmentReturnRate is the annualized return on invested savings
	InvestmentReturnRate decimal.Decimal

	// InvestmentPortion is the share of disposable income invested
	InvestmentPortion decimal.Decimal

	// Horizon is the number of years simulated
	Horizon int
}

// NewProjector returns a projector with the standard assumptions:
// 10% annual return, 20% of disposable income invested, 10-year horizon.
func NewProjector() *Projector {
	return &Projector{
		InvestmentReturnRate: decimal.NewFromFloat(0.10),
		InvestmentPortion:    decimal.NewFromFloat(0.20),
		Horizon:              10,
	}
}

// Project simulates a path over the horizon
func (p *Projector) Project(params PathParams) ([]YearlyDatum, error) {
	if p.Horizon <= 0 {
		return nil, errors.Input("projection horizon must be positive")
	}
	if params.TotalCost != nil && (params.CostDuration == nil || *params.CostDuration <= 0) {
		return nil, errors.Input("cost duration must be positive when a total cost is set")
	}

	one := decimal.NewFromInt(1)
	half := decimal.NewFromFloat(0.5)

	var results []YearlyDatum
	totalCash := decimal.Zero
	totalInvestment := decimal.Zero
	totalCostPaid := decimal.Zero
	costYearsCharged := 0

	for year := 1; year <= p.Horizon; year++ {
		datum := YearlyDatum{Year: year}

		workYear := p.workYear(year, params)
		datum.WorkYear = workYear

		livingGrowth := one.Add(params.LivingCostGrowth).Pow(decimal.NewFromInt(int64(year - 1)))

		if workYear != nil {
			salaryGrowth := one.Add(params.SalaryGrowthRate).Pow(decimal.NewFromInt(int64(*workYear - 1)))
			datum.Income = params.InitialSalary.Mul(salaryGrowth)
			datum.NetIncome = datum.Income.Mul(one.Sub(params.TaxRate))
			datum.LivingCost = params.LivingCost.Mul(livingGrowth)
			disposable := datum.NetIncome.Sub(datum.LivingCost)
			if disposable.Sign() < 0 {
				disposable = decimal.Zero
			}
			datum.Disposable = disposable
		} else if params.TotalCost != nil && costYearsCharged < *params.CostDuration {
			// Study year: the cost is spread linearly over the study years
			// and living costs keep running with no income.
			datum.StudyCost = params.TotalCost.Div(decimal.NewFromInt(int64(*params.CostDuration)))
			totalCostPaid = totalCostPaid.Add(datum.StudyCost)
			costYearsCharged++
			datum.LivingCost = params.LivingCost.Mul(livingGrowth)
		}

		datum.InvestmentAmount = datum.Disposable.Mul(p.InvestmentPortion)
		if year == 1 && params.FirstYearOpportunityCost != nil {
			datum.InvestmentAmount = datum.InvestmentAmount.Add(*params.FirstYearOpportunityCost)
		}
		datum.CashSavings = datum.Disposable.Sub(datum.Disposable.Mul(p.InvestmentPortion))

		// Existing holdings earn a full year's return; new contributions
		// average six months in the market.
		existingReturn := totalInvestment.Mul(p.InvestmentReturnRate)
		newReturn := datum.InvestmentAmount.Mul(p.InvestmentReturnRate).Mul(half)
		datum.InvestmentReturn = existingReturn.Add(newReturn)

		totalInvestment = totalInvestment.Add(datum.InvestmentReturn).Add(datum.InvestmentAmount)
		totalCash = totalCash.Add(datum.CashSavings)

		datum.TotalInvestment = totalInvestment
		datum.TotalCash = totalCash
		datum.NetWorth = totalCash.Add(totalInvestment)
		if params.TotalCost != nil {
			datum.NetWorth = datum.NetWorth.Sub(totalCostPaid)
		}

		results = append(results, datum)
	}

	return results, nil
}

// workYear returns the 1-based working year for a calendar year, or nil
// outside the working window.
func (p *Projector) workYear(year int, params PathParams) *int {
	if year <= params.WorkStartDelay {
		return nil
	}
	wy := year - params.WorkStartDelay
	if params.WorkDurationLimit != nil && wy > *params.WorkDurationLimit {
		return nil
	}
	return &wy
}

// ComparePaths projects both paths and derives breakeven and final ROI
func (p *Projector) ComparePaths(a, b PathParams) (*PathComparison, error) {
	dataA, err := p.Project(a)
	if err != nil {
		return nil, err
	}
	dataB, err := p.Project(b)
	if err != nil {
		return nil, err
	}

	comparison := &PathComparison{AName: a.Name, BName: b.Name}
	for i := range dataA {
		comparison.Years = append(comparison.Years, ComparisonYear{
			Year: dataA[i].Year,
			A:    dataA[i],
			B:    dataB[i],
		})
		if comparison.BreakevenYear == nil && dataA[i].NetWorth.GreaterThanOrEqual(dataB[i].NetWorth) {
			year := dataA[i].Year
			comparison.BreakevenYear = &year
		}
	}

	final := comparison.Years[len(comparison.Years)-1]
	comparison.FinalROIA = finalROI(final.A.NetWorth, a, b)
	comparison.FinalROIB = finalROI(final.B.NetWorth, b, a)

	return comparison, nil
}

// finalROI relates a path's final net worth to its cost basis. A path
// without its own cost borrows the other path's basis so the two figures
// stay comparable.
func finalROI(netWorth decimal.Decimal, path, other PathParams) decimal.Decimal {
	basis := decimal.NewFromInt(1)
	switch {
	case path.TotalCost != nil && path.TotalCost.Sign() > 0:
		basis = *path.TotalCost
		return netWorth.Add(basis).Div(basis)
	case other.TotalCost != nil && other.TotalCost.Sign() > 0:
		basis = *other.TotalCost
	}
	return netWorth.Div(basis)
}

// StudyPath builds the education path for a computed cost breakdown:
// no income during the study years, the breakdown total spread over them,
// then the school country's salary expectations afterwards.
func StudyPath(name string, breakdown *types.CostBreakdown, salary, salaryGrowth, livingCost, livingGrowth, taxRate decimal.Decimal, workLimit *int) PathParams {
	years := breakdown.Duration.Years
	if breakdown.Duration.Months > 0 {
		years++
	}
	total := breakdown.Total
	return PathParams{
		Name:              name,
		WorkStartDelay:    years,
		WorkDurationLimit: workLimit,
		InitialSalary:     salary,
		SalaryGrowthRate:  salaryGrowth,
		LivingCost:        livingCost,
		LivingCostGrowth:  livingGrowth,
		TaxRate:           taxRate,
		TotalCost:         &total,
		CostDuration:      &years,
	}
}

// WorkPath builds the stay-home path from an opportunity-cost reference
// profile: income starts immediately with no study cost.
func WorkPath(name string, input types.OpportunityCostInput, salaryGrowth, livingGrowth decimal.Decimal) PathParams {
	salary := input.SalaryByTier[input.Seniority]
	return PathParams{
		Name:             name,
		InitialSalary:    salary,
		SalaryGrowthRate: salaryGrowth,
		LivingCost:       input.DomesticLivingCost,
		LivingCostGrowth: livingGrowth,
		TaxRate:          input.TaxRate,
	}
}
