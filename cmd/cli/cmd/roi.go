// Package cmd - roi command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"abroad-cost/core/costing"
	"abroad-cost/core/projection"
	"abroad-cost/core/types"
	"abroad-cost/internal/config"
)

var (
	roiYears   int
	roiMonths  int
	roiTier    string
	roiFormat  string
	roiSalary  float64
	roiHorizon int
)

// roiCmd represents the roi command
var roiCmd = &cobra.Command{
	Use:   "roi <school>",
	Short: "Project studying abroad against staying home",
	Long: `Simulate year-by-year finances over an analysis horizon for two
paths: studying at the given school and then working, versus keeping the
domestic reference job. Reports net worth per year, final ROI, and the
year the study path catches up, if it does.

The study path's cost is the school's full cost breakdown; the stay-home
path comes from the configured opportunity-cost reference profile.

Examples:
  abroad-cost roi "Technical University of Munich" --salary 85000
  abroad-cost roi "TU Delft" --horizon 15 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runROI,
}

func init() {
	roiCmd.Flags().IntVarP(&roiYears, "years", "y", 2, "study duration, whole years")
	roiCmd.Flags().IntVarP(&roiMonths, "months", "m", 0, "study duration, additional months")
	roiCmd.Flags().StringVarP(&roiTier, "tier", "t", "", "cost tier (budget, standard, comfortable)")
	roiCmd.Flags().StringVarP(&roiFormat, "format", "f", "", "output format (table, json, yaml)")
	roiCmd.Flags().Float64VarP(&roiSalary, "salary", "s", 0, "expected post-study annual salary (defaults to the senior reference salary)")
	roiCmd.Flags().IntVar(&roiHorizon, "horizon", 0, "projection horizon in years (defaults from config)")
}

func runROI(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	school, region, fees, err := cat.Resolve(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	duration := durationFlags(roiYears, roiMonths,
		cmd.Flags().Changed("years") || cmd.Flags().Changed("months"))

	tier := cfg.Defaults.Tier
	if roiTier != "" {
		tier, err = types.ParseTier(roiTier)
		if err != nil {
			return err
		}
	}

	breakdown, err := costing.Compute(school, region, duration, tier, fees, cat.Rates(), cfg.ReportingCurrency)
	if err != nil {
		return fmt.Errorf("estimating %s: %w", school.Name, err)
	}

	opp := cfg.Opportunity
	postStudySalary := opp.SalaryByTier[types.SenioritySenior]
	if cmd.Flags().Changed("salary") {
		postStudySalary = decimal.NewFromFloat(roiSalary)
	}

	projector := &projection.Projector{
		InvestmentReturnRate: cfg.Projection.InvestmentReturnRate,
		InvestmentPortion:    cfg.Projection.InvestmentPortion,
		Horizon:              cfg.Projection.HorizonYears,
	}
	if roiHorizon > 0 {
		projector.Horizon = roiHorizon
	}

	studyPath := projection.StudyPath(
		school.ShortName,
		breakdown,
		postStudySalary,
		opp.SalaryGrowth,
		opp.LivingCost,
		opp.LivingCostGrowth,
		opp.TaxRate,
		school.WorkDurationLimit,
	)
	workPath := projection.WorkPath("Stay home", opp.Input(), opp.SalaryGrowth, opp.LivingCostGrowth)

	comparison, err := projector.ComparePaths(studyPath, workPath)
	if err != nil {
		return err
	}

	formatter, err := formatterFlag(roiFormat)
	if err != nil {
		return err
	}
	return formatter.RenderProjection(os.Stdout, comparison)
}
