// Package stats prints ledger analytics to the terminal
package stats

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ekaraca/vakif-ledger/cmd/root"
	"ekaraca/vakif-ledger/internal/analytics"
	"ekaraca/vakif-ledger/internal/trnum"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ledger totals and trading performance",
	Long: `Show whole-ledger totals, realized performance per stock and
monthly trading performance.`,
	RunE: statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	records, err := c.GetStore().ListRecords(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list ledger records: %w", err)
	}

	out := cmd.OutOrStdout()
	summary := analytics.Summarize(records)
	fmt.Fprintf(out, "Records:  %d\n", summary.RecordCount)
	fmt.Fprintf(out, "Income:   %s TL\n", trnum.Format(summary.TotalIncome, 2))
	fmt.Fprintf(out, "Expense:  %s TL\n", trnum.Format(summary.TotalExpense, 2))
	fmt.Fprintf(out, "Net:      %s TL\n", trnum.Format(summary.NetIncome, 2))

	perfs := analytics.StockPerformances(records, c.GetSymbols())
	if len(perfs) > 0 {
		fmt.Fprintf(out, "\nStock performance:\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tBUY\tSELL\tP&L\tCOMMISSION\tNET\tTRADES")
		for _, p := range perfs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
				p.Symbol,
				trnum.Format(p.TotalBuy, 2),
				trnum.Format(p.TotalSell, 2),
				trnum.Format(p.RealizedPnL, 2),
				trnum.Format(p.TotalCommission, 2),
				trnum.Format(p.NetReturn, 2),
				p.TransactionCount,
			)
		}
		w.Flush()
	}

	months := analytics.MonthlyPerformances(records, c.GetSymbols())
	if len(months) > 0 {
		fmt.Fprintf(out, "\nMonthly performance:\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tVOLUME\tP&L\tCOMMISSION\tNET\tTRADES")
		for _, m := range months {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				m.Month,
				trnum.Format(m.TotalVolume, 2),
				trnum.Format(m.RealizedPnL, 2),
				trnum.Format(m.CommissionPaid, 2),
				trnum.Format(m.NetReturn, 2),
				m.TransactionCount,
			)
		}
		w.Flush()
	}
	return nil
}
