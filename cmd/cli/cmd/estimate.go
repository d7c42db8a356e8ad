// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"abroad-cost/core/costing"
	"abroad-cost/core/opportunity"
	"abroad-cost/core/types"
	"abroad-cost/internal/config"
	"abroad-cost/internal/logging"
)

var (
	estimateYears       int
	estimateMonths      int
	estimateTier        string
	estimateFormat      string
	estimateOpportunity bool
	estimateSeniority   string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <school>",
	Short: "Estimate the total cost for one school",
	Long: `Compute a full cost breakdown for a single school: prorated
tuition, per-category living costs, and one-time ancillary fees,
normalized to the reporting currency.

With --opportunity, the forgone domestic net savings over the study
duration is reported alongside the breakdown.

Examples:
  abroad-cost estimate "Technical University of Munich"
  abroad-cost estimate "TU Delft" --years 1 --months 6 --tier comfortable
  abroad-cost estimate "University of Tokyo" --format json --opportunity`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().IntVarP(&estimateYears, "years", "y", 2, "study duration, whole years")
	estimateCmd.Flags().IntVarP(&estimateMonths, "months", "m", 0, "study duration, additional months")
	estimateCmd.Flags().StringVarP(&estimateTier, "tier", "t", "", "cost tier (budget, standard, comfortable)")
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "", "output format (table, json, yaml)")
	estimateCmd.Flags().BoolVarP(&estimateOpportunity, "opportunity", "o", false, "include forgone domestic savings")
	estimateCmd.Flags().StringVar(&estimateSeniority, "seniority", "", "reference seniority tier (junior, mid, senior)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	school, region, fees, err := cat.Resolve(args[0])
	if err != nil {
		return err
	}

	duration := durationFlags(estimateYears, estimateMonths,
		cmd.Flags().Changed("years") || cmd.Flags().Changed("months"))

	tier := config.Get().Defaults.Tier
	if estimateTier != "" {
		tier, err = types.ParseTier(estimateTier)
		if err != nil {
			return err
		}
	}

	logging.Sugar.Debugw("estimating", "school", school.Name, "duration", duration.String(), "tier", tier)

	breakdown, err := costing.Compute(school, region, duration, tier, fees, cat.Rates(), config.Get().ReportingCurrency)
	if err != nil {
		return fmt.Errorf("estimating %s: %w", school.Name, err)
	}

	formatter, err := formatterFlag(estimateFormat)
	if err != nil {
		return err
	}

	// With --opportunity the single school is rendered as a one-entry
	// comparison so the forgone-savings and all-in columns appear.
	if estimateOpportunity {
		input := config.Get().Opportunity.Input()
		if estimateSeniority != "" {
			input.Seniority = types.SeniorityTier(estimateSeniority)
		}
		oppResult, err := opportunity.Compute(input, duration, cat.Rates(), config.Get().ReportingCurrency)
		if err != nil {
			return err
		}
		comparison := &types.RankedComparison{
			Currency: config.Get().ReportingCurrency,
			Duration: duration,
			Tier:     tier,
			Entries: []types.ComparisonEntry{{
				School:      school.Name,
				ShortName:   school.ShortName,
				Breakdown:   breakdown,
				Opportunity: oppResult,
			}},
		}
		return formatter.RenderComparison(os.Stdout, comparison)
	}

	return formatter.RenderBreakdown(os.Stdout, breakdown)
}
