// Package types - Closed cost and fee category sets
package types

import "github.com/shopspring/decimal"

// CostCategory is a recurring living-cost category
type CostCategory string

const (
	CostHousing       CostCategory = "housing"
	CostFood          CostCategory = "food"
	CostTransport     CostCategory = "transport"
	CostUtilities     CostCategory = "utilities"
	CostEntertainment CostCategory = "entertainment"
	CostPersonal      CostCategory = "personal"
)

// AllCostCategories returns the closed category set in canonical order
func AllCostCategories() []CostCategory {
	return []CostCategory{
		CostHousing,
		CostFood,
		CostTransport,
		CostUtilities,
		CostEntertainment,
		CostPersonal,
	}
}

// IsValid checks if the cost category is in the closed set
func (c CostCategory) IsValid() bool {
	switch c {
	case CostHousing, CostFood, CostTransport, CostUtilities,
		CostEntertainment, CostPersonal:
		return true
	default:
		return false
	}
}

// CanonicalShares returns the default split of a region's monthly baseline
// across cost categories. Shares sum to exactly 1.
func CanonicalShares() map[CostCategory]decimal.Decimal {
	return map[CostCategory]decimal.Decimal{
		CostHousing:       decimal.NewFromFloat(0.40),
		CostFood:          decimal.NewFromFloat(0.25),
		CostTransport:     decimal.NewFromFloat(0.10),
		CostUtilities:     decimal.NewFromFloat(0.10),
		CostEntertainment: decimal.NewFromFloat(0.10),
		CostPersonal:      decimal.NewFromFloat(0.05),
	}
}

// FeeCategory is a one-time ancillary fee category
type FeeCategory string

const (
	FeeApplication       FeeCategory = "application"
	FeeVisaLegal         FeeCategory = "visa_legal"
	FeeInsuranceMedical  FeeCategory = "insurance_medical"
	FeeTransportation    FeeCategory = "transportation"
	FeeAccommodation     FeeCategory = "accommodation"
	FeeFinancialServices FeeCategory = "financial_services"
	FeeCommunication     FeeCategory = "communication"
	FeeStudy             FeeCategory = "study"
	FeeJobSearch         FeeCategory = "job_search"
	FeeEmergency         FeeCategory = "emergency"
)

// AllFeeCategories returns the closed category set in canonical order
func AllFeeCategories() []FeeCategory {
	return []FeeCategory{
		FeeApplication,
		FeeVisaLegal,
		FeeInsuranceMedical,
		FeeTransportation,
		FeeAccommodation,
		FeeFinancialServices,
		FeeCommunication,
		FeeStudy,
		FeeJobSearch,
		FeeEmergency,
	}
}

// IsValid checks if the fee category is in the closed set
func (f FeeCategory) IsValid() bool {
	switch f {
	case FeeApplication, FeeVisaLegal, FeeInsuranceMedical,
		FeeTransportation, FeeAccommodation, FeeFinancialServices,
		FeeCommunication, FeeStudy, FeeJobSearch, FeeEmergency:
		return true
	default:
		return false
	}
}

// Discretionary reports whether the category scales with cost tier by
// default. Fixed categories reflect regulatory or contractual costs and
// must not scale with comfort tier.
func (f FeeCategory) Discretionary() bool {
	switch f {
	case FeeApplication, FeeVisaLegal, FeeInsuranceMedical:
		return false
	default:
		return true
	}
}
