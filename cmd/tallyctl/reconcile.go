package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/internal/app"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

func reconcileCmd() *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair savings goals against their contributions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}

			return withServices(cmd.Context(), func(svc *app.Services) error {
				var report *savings.Report

				if goal != "" {
					goalID, err := uuid.Parse(goal)
					if err != nil {
						return fmt.Errorf("invalid --goal %q: %w", goal, err)
					}

					report, err = svc.Savings.ReconcileGoal(cmd.Context(), owner, goalID)
					if err != nil {
						return err
					}
				} else {
					report, err = svc.Savings.Reconcile(cmd.Context(), owner)
					if err != nil {
						return err
					}
				}

				printReport(cmd.OutOrStdout(), report)

				return nil
			})
		},
	}

	addOwnerFlag(cmd)
	cmd.Flags().StringVar(&goal, "goal", "", "reconcile a single goal")

	return cmd
}

func printReport(w io.Writer, r *savings.Report) {
	if r.Empty() {
		fmt.Fprintln(w, "All goals match their contributions.")
		return
	}

	for _, id := range r.Applied {
		fmt.Fprintf(w, "applied contribution %s\n", id)
	}

	for _, d := range r.Repaired {
		fmt.Fprintf(w, "goal %s: %s -> %s\n", d.GoalID, d.Recorded.StringFixed(2), d.Expected.StringFixed(2))
	}
}
