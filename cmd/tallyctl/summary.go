package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/internal/app"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

func summaryCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print income, expense and net for a date range",
		Long:  `Print totals for --start..--end inclusive. Both default to the current month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}

			w, err := window(start, end, time.Now())
			if err != nil {
				return err
			}

			return withServices(cmd.Context(), func(svc *app.Services) error {
				totals, err := svc.Transactions.SummarizePeriod(cmd.Context(), owner, w.Start, w.End)
				if err != nil {
					return err
				}

				printTotals(cmd.OutOrStdout(), w, totals)

				return nil
			})
		},
	}

	addOwnerFlag(cmd)
	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")

	return cmd
}

func window(start, end string, now time.Time) (summary.Window, error) {
	w := summary.Month(now)

	if start != "" {
		d, err := ledger.ParseDay(start)
		if err != nil {
			return summary.Window{}, fmt.Errorf("--start: %w", err)
		}

		w.Start = d
	}

	if end != "" {
		d, err := ledger.ParseDay(end)
		if err != nil {
			return summary.Window{}, fmt.Errorf("--end: %w", err)
		}

		w.End = d
	}

	if w.End.Before(w.Start) {
		return summary.Window{}, fmt.Errorf("--end before --start: %w", ledger.ErrInvalidDate)
	}

	return w, nil
}

func printTotals(out io.Writer, w summary.Window, t summary.Totals) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Period\t%s .. %s\n", w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly))
	fmt.Fprintf(tw, "Income\t%s\n", t.Income.StringFixed(2))
	fmt.Fprintf(tw, "Expense\t%s\n", t.Expense.StringFixed(2))
	fmt.Fprintf(tw, "Net\t%s\n", t.Net.StringFixed(2))
}
