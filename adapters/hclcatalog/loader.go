// Package hclcatalog loads catalog definition files into the in-memory
// catalog. It is a thin adapter: all integrity rules live in core/catalog,
// this package only parses and converts.
//
// Definition files use HCL:
//
//	rates = {
//	  USD = 1.0
//	  EUR = 1.08
//	}
//
//	region "bavaria" {
//	  country            = "germany"
//	  currency           = "EUR"
//	  baseline_per_month = 1250
//	  factors = {
//	    housing = 1.15
//	  }
//	}
//
//	school "Technical University of Munich" {
//	  short_name       = "TUM"
//	  country          = "germany"
//	  region           = "bavaria"
//	  currency         = "EUR"
//	  tuition_per_year = 6000
//	}
//
//	fees "germany" {
//	  currency = "EUR"
//	  fee "visa_legal" { amount = 160 }
//	  fee "study"      { amount = 900 }
//	}
package hclcatalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"abroad-cost/core/catalog"
	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

type fileSchema struct {
	Rates   map[string]float64 `hcl:"rates,optional"`
	Regions []regionBlock      `hcl:"region,block"`
	Schools []schoolBlock      `hcl:"school,block"`
	Fees    []feesBlock        `hcl:"fees,block"`
}

type regionBlock struct {
	Name     string             `hcl:"name,label"`
	Country  string             `hcl:"country"`
	Currency string             `hcl:"currency"`
	Baseline float64            `hcl:"baseline_per_month"`
	Shares   map[string]float64 `hcl:"shares,optional"`
	Factors  map[string]float64 `hcl:"factors,optional"`
}

type schoolBlock struct {
	Name              string  `hcl:"name,label"`
	ShortName         string  `hcl:"short_name"`
	Country           string  `hcl:"country"`
	Region            string  `hcl:"region"`
	Currency          string  `hcl:"currency"`
	TuitionPerYear    float64 `hcl:"tuition_per_year"`
	Ranking           *int    `hcl:"ranking,optional"`
	WorkDurationLimit *int    `hcl:"work_duration_limit,optional"`
	Description       string  `hcl:"description,optional"`
}

type feesBlock struct {
	Country  string     `hcl:"country,label"`
	Currency string     `hcl:"currency"`
	Entries  []feeBlock `hcl:"fee,block"`
}

type feeBlock struct {
	Category      string  `hcl:"category,label"`
	Amount        float64 `hcl:"amount"`
	Discretionary *bool   `hcl:"discretionary,optional"`
}

// Load reads a definition file, or every .hcl file in a directory, into a
// validated catalog. Validation failures are load-time errors.
func Load(path string) (*catalog.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Config(fmt.Sprintf("catalog path: %s", path), err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.hcl"))
		if err != nil {
			return nil, errors.Config("listing catalog files", err)
		}
		sort.Strings(files)
		if len(files) == 0 {
			return nil, errors.Config(fmt.Sprintf("no .hcl files in %s", path), nil)
		}
	}

	cat := catalog.New()
	for _, file := range files {
		var schema fileSchema
		if err := hclsimple.DecodeFile(file, nil, &schema); err != nil {
			return nil, errors.Config(fmt.Sprintf("parsing %s", file), err)
		}
		if err := merge(cat, &schema); err != nil {
			return nil, errors.Config(fmt.Sprintf("loading %s", file), err)
		}
	}

	return validated(cat)
}

// LoadBytes parses one in-memory definition file into a validated catalog.
// The filename determines the HCL syntax and appears in diagnostics.
func LoadBytes(filename string, src []byte) (*catalog.Catalog, error) {
	var schema fileSchema
	if err := hclsimple.Decode(filename, src, nil, &schema); err != nil {
		return nil, errors.Config(fmt.Sprintf("parsing %s", filename), err)
	}

	cat := catalog.New()
	if err := merge(cat, &schema); err != nil {
		return nil, errors.Config(fmt.Sprintf("loading %s", filename), err)
	}
	return validated(cat)
}

// merge converts one parsed file into catalog records, enforcing the
// closed country/category/tier sets at load time. Redefining a school,
// region, or country fee schedule is an error, within a file or across
// the files of a directory, so two files never silently shadow each other.
func merge(cat *catalog.Catalog, schema *fileSchema) error {
	for code, rate := range schema.Rates {
		cat.SetRate(types.Currency(strings.ToUpper(code)), decimal.NewFromFloat(rate))
	}

	for _, block := range schema.Regions {
		if cat.HasRegion(block.Name) {
			return fmt.Errorf("region %q defined twice", block.Name)
		}
		country, err := types.ParseCountry(block.Country)
		if err != nil {
			return fmt.Errorf("region %q: %w", block.Name, err)
		}
		shares, err := categoryMap(block.Shares)
		if err != nil {
			return fmt.Errorf("region %q: %w", block.Name, err)
		}
		factors, err := categoryMap(block.Factors)
		if err != nil {
			return fmt.Errorf("region %q: %w", block.Name, err)
		}
		cat.AddRegion(types.RegionProfile{
			Country:          country,
			Name:             block.Name,
			Currency:         types.Currency(strings.ToUpper(block.Currency)),
			BaselinePerMonth: decimal.NewFromFloat(block.Baseline),
			CategoryShares:   shares,
			CategoryFactors:  factors,
		})
	}

	for _, block := range schema.Schools {
		if cat.HasSchool(block.Name) {
			return fmt.Errorf("school %q defined twice", block.Name)
		}
		country, err := types.ParseCountry(block.Country)
		if err != nil {
			return fmt.Errorf("school %q: %w", block.Name, err)
		}
		cat.AddSchool(types.SchoolProfile{
			Name:              block.Name,
			ShortName:         block.ShortName,
			Country:           country,
			Region:            block.Region,
			Currency:          types.Currency(strings.ToUpper(block.Currency)),
			TuitionPerYear:    decimal.NewFromFloat(block.TuitionPerYear),
			Ranking:           block.Ranking,
			WorkDurationLimit: block.WorkDurationLimit,
			Description:       block.Description,
		})
	}

	for _, block := range schema.Fees {
		country, err := types.ParseCountry(block.Country)
		if err != nil {
			return fmt.Errorf("fees %q: %w", block.Country, err)
		}
		if cat.HasFees(country) {
			return fmt.Errorf("fees for %q defined twice", country)
		}
		currency := types.Currency(strings.ToUpper(block.Currency))
		schedule := make(types.FeeSchedule, len(block.Entries))
		for _, entry := range block.Entries {
			category := types.FeeCategory(entry.Category)
			if !category.IsValid() {
				return errors.UnknownCategory("fee", entry.Category)
			}
			discretionary := category.Discretionary()
			if entry.Discretionary != nil {
				discretionary = *entry.Discretionary
			}
			schedule[category] = types.FeeEntry{
				Amount:        decimal.NewFromFloat(entry.Amount),
				Currency:      currency,
				Discretionary: discretionary,
			}
		}
		cat.SetFees(country, schedule)
	}

	return nil
}

// categoryMap converts string-keyed numbers into a closed-set category map
func categoryMap(m map[string]float64) (map[types.CostCategory]decimal.Decimal, error) {
	if len(m) == 0 {
		return nil, nil
	}
	result := make(map[types.CostCategory]decimal.Decimal, len(m))
	for name, value := range m {
		category := types.CostCategory(name)
		if !category.IsValid() {
			return nil, errors.UnknownCategory("cost", name)
		}
		result[category] = decimal.NewFromFloat(value)
	}
	return result, nil
}

// validated runs the standard catalog rules and aggregates any failures
func validated(cat *catalog.Catalog) (*catalog.Catalog, error) {
	if errs := cat.Validate(catalog.DefaultValidationRules()); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		return nil, errors.Config(fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(messages, "\n  ")), nil)
	}
	return cat, nil
}
