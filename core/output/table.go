// Package output - Terminal table renderer
package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"abroad-cost/core/projection"
	"abroad-cost/core/types"
)

// TableFormatter renders results as terminal tables
type TableFormatter struct{}

// Format returns the format type
func (f *TableFormatter) Format() Format { return FormatTable }

// RenderBreakdown writes a breakdown as a line-item table plus totals
func (f *TableFormatter) RenderBreakdown(w io.Writer, breakdown *types.CostBreakdown) error {
	fmt.Fprintf(w, "%s (%s) - %s, %s tier\n\n",
		breakdown.School, breakdown.ShortName, breakdown.Duration, breakdown.Tier)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Component", "Category", "Amount (" + breakdown.Currency.String() + ")"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, item := range breakdown.LineItems {
		category := item.Category
		if item.Kind == types.LineFee && item.Discretionary {
			category += " *"
		}
		table.Append([]string{string(item.Kind), category, money(item.Amount)})
	}
	table.SetFooter([]string{"", "Total", money(breakdown.Total)})
	table.Render()

	fmt.Fprintf(w, "\nTuition %s | Living %s | Fees %s  (* scales with tier)\n",
		money(breakdown.Tuition), money(breakdown.Living), money(breakdown.Fees))
	return nil
}

// RenderComparison writes a ranked comparison table and, when present,
// the per-school failure annotations
func (f *TableFormatter) RenderComparison(w io.Writer, comparison *types.RankedComparison) error {
	fmt.Fprintf(w, "Ranked by total cost - %s, %s tier, in %s\n\n",
		comparison.Duration, comparison.Tier, comparison.Currency)

	hasOpportunity := len(comparison.Entries) > 0 && comparison.Entries[0].Opportunity != nil

	table := tablewriter.NewWriter(w)
	header := []string{"#", "School", "Tuition", "Living", "Fees", "Total"}
	if hasOpportunity {
		header = append(header, "Opportunity", "All-In")
	}
	table.SetHeader(header)

	for i, entry := range comparison.Entries {
		row := []string{
			fmt.Sprintf("%d", i+1),
			entry.School,
			money(entry.Breakdown.Tuition),
			money(entry.Breakdown.Living),
			money(entry.Breakdown.Fees),
			money(entry.Breakdown.Total),
		}
		if hasOpportunity {
			row = append(row,
				money(entry.Opportunity.Total),
				money(entry.Breakdown.Total.Add(entry.Opportunity.Total)))
		}
		table.Append(row)
	}
	table.Render()

	if len(comparison.Failures) > 0 {
		fmt.Fprintf(w, "\n%d school(s) could not be ranked:\n", len(comparison.Failures))
		for _, failure := range comparison.Failures {
			fmt.Fprintf(w, "  - %s: %s\n", failure.School, failure.Reason)
		}
	}
	return nil
}

// RenderProjection writes the year-by-year net worth comparison
func (f *TableFormatter) RenderProjection(w io.Writer, comparison *projection.PathComparison) error {
	fmt.Fprintf(w, "%s vs %s - projected net worth\n\n", comparison.AName, comparison.BName)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Year", comparison.AName, comparison.BName, "Difference"})

	for _, year := range comparison.Years {
		diff := year.A.NetWorth.Sub(year.B.NetWorth)
		table.Append([]string{
			fmt.Sprintf("%d", year.Year),
			money(year.A.NetWorth),
			money(year.B.NetWorth),
			money(diff),
		})
	}
	table.Render()

	pct := func(roi decimal.Decimal) string {
		return roi.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
	}
	fmt.Fprintf(w, "\nFinal ROI: %s %s, %s %s\n", comparison.AName, pct(comparison.FinalROIA), comparison.BName, pct(comparison.FinalROIB))
	if comparison.BreakevenYear != nil {
		fmt.Fprintf(w, "%s catches up with %s in year %d\n", comparison.AName, comparison.BName, *comparison.BreakevenYear)
	} else {
		fmt.Fprintf(w, "%s does not catch up with %s within the horizon\n", comparison.AName, comparison.BName)
	}
	return nil
}

// money formats a decimal for table cells
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
