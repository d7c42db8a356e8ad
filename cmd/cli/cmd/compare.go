// Package cmd - compare command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"abroad-cost/core/compare"
	"abroad-cost/core/types"
	"abroad-cost/internal/config"
)

var (
	compareYears       int
	compareMonths      int
	compareTier        string
	compareFormat      string
	compareOpportunity bool
	compareSeniority   string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [school...]",
	Short: "Rank schools by estimated total cost",
	Long: `Run the cost calculator over several schools and rank them
ascending by total cost. With no arguments the whole catalog is compared.
Schools whose calculation fails are reported alongside the ranking
instead of aborting it.

With --opportunity, the forgone domestic net savings over the study
duration is attached to every ranked school.

Examples:
  abroad-cost compare
  abroad-cost compare "TU Delft" "University of Tokyo"
  abroad-cost compare --tier budget --opportunity --seniority senior`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVarP(&compareYears, "years", "y", 2, "study duration, whole years")
	compareCmd.Flags().IntVarP(&compareMonths, "months", "m", 0, "study duration, additional months")
	compareCmd.Flags().StringVarP(&compareTier, "tier", "t", "", "cost tier (budget, standard, comfortable)")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "", "output format (table, json, yaml)")
	compareCmd.Flags().BoolVarP(&compareOpportunity, "opportunity", "o", false, "include forgone domestic savings")
	compareCmd.Flags().StringVar(&compareSeniority, "seniority", "", "reference seniority tier (junior, mid, senior)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	duration := durationFlags(compareYears, compareMonths,
		cmd.Flags().Changed("years") || cmd.Flags().Changed("months"))

	cfg := config.Get()
	tier := cfg.Defaults.Tier
	if compareTier != "" {
		tier, err = types.ParseTier(compareTier)
		if err != nil {
			return err
		}
	}

	var oppInput *types.OpportunityCostInput
	if compareOpportunity {
		input := cfg.Opportunity.Input()
		if compareSeniority != "" {
			input.Seniority = types.SeniorityTier(compareSeniority)
		}
		oppInput = &input
	}

	candidates := compare.Gather(cat, args)
	if len(candidates) == 0 {
		return fmt.Errorf("catalog has no schools to compare")
	}

	comparison, err := compare.Compare(candidates, duration, tier, cat.Rates(), cfg.ReportingCurrency, oppInput)
	if err != nil {
		return err
	}

	formatter, err := formatterFlag(compareFormat)
	if err != nil {
		return err
	}
	return formatter.RenderComparison(os.Stdout, comparison)
}
