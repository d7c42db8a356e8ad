// Package catalog holds the in-memory profile catalog: schools, regions,
// fee schedules, and currency rates. It is loaded once at startup and
// read-only afterwards; the cost engines never mutate it.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"abroad-cost/core/types"
	"abroad-cost/internal/errors"
)

// Catalog is the authoritative set of school and region records
type Catalog struct {
	schools map[string]*types.SchoolProfile
	regions map[string]*types.RegionProfile
	fees    map[types.Country]types.FeeSchedule
	rates   types.RateTable
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		schools: make(map[string]*types.SchoolProfile),
		regions: make(map[string]*types.RegionProfile),
		fees:    make(map[types.Country]types.FeeSchedule),
		rates:   make(types.RateTable),
	}
}

// AddSchool registers a school profile, keyed by its full name
func (c *Catalog) AddSchool(s types.SchoolProfile) {
	c.schools[s.Name] = &s
}

// AddRegion registers a region profile, keyed by its name
func (c *Catalog) AddRegion(r types.RegionProfile) {
	c.regions[r.Name] = &r
}

// SetFees registers a country's fee schedule
func (c *Catalog) SetFees(country types.Country, schedule types.FeeSchedule) {
	c.fees[country] = schedule
}

// SetRate registers a currency's USD conversion factor
func (c *Catalog) SetRate(currency types.Currency, rate decimal.Decimal) {
	c.rates[currency] = rate
}

// School returns a school by full name
func (c *Catalog) School(name string) (*types.SchoolProfile, error) {
	s, ok := c.schools[name]
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "school not found in catalog: %s", name)
	}
	return s, nil
}

// Region returns a region by name
func (c *Catalog) Region(name string) (*types.RegionProfile, error) {
	r, ok := c.regions[name]
	if !ok {
		return nil, errors.MissingRegion(name)
	}
	return r, nil
}

// HasSchool reports whether a school name is already registered
func (c *Catalog) HasSchool(name string) bool {
	_, ok := c.schools[name]
	return ok
}

// HasRegion reports whether a region name is already registered
func (c *Catalog) HasRegion(name string) bool {
	_, ok := c.regions[name]
	return ok
}

// HasFees reports whether a country already has a fee schedule
func (c *Catalog) HasFees(country types.Country) bool {
	_, ok := c.fees[country]
	return ok
}

// FeesFor returns a country's fee schedule. A country with no schedule
// contributes zero ancillary fees.
func (c *Catalog) FeesFor(country types.Country) types.FeeSchedule {
	if schedule, ok := c.fees[country]; ok {
		return schedule
	}
	return types.FeeSchedule{}
}

// Rates returns the currency rate table
func (c *Catalog) Rates() types.RateTable {
	return c.rates
}

// Schools returns every school sorted by name for deterministic iteration
func (c *Catalog) Schools() []*types.SchoolProfile {
	names := make([]string, 0, len(c.schools))
	for name := range c.schools {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]*types.SchoolProfile, 0, len(names))
	for _, name := range names {
		result = append(result, c.schools[name])
	}
	return result
}

// Len returns the number of schools
func (c *Catalog) Len() int {
	return len(c.schools)
}

// Resolve looks up a school together with its region and fee schedule.
// A dangling region reference surfaces as MissingRegion.
func (c *Catalog) Resolve(schoolName string) (*types.SchoolProfile, *types.RegionProfile, types.FeeSchedule, error) {
	school, err := c.School(schoolName)
	if err != nil {
		return nil, nil, nil, err
	}
	region, err := c.Region(school.Region)
	if err != nil {
		return nil, nil, nil, err
	}
	return school, region, c.FeesFor(school.Country), nil
}
