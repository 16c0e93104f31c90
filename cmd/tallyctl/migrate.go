package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/internal/database"
)

func migrateCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Apply pending migrations, or move by --steps (negative rolls back).`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := database.Migrate(cfg.ConnectionString(), steps); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}

			slog.Info("migrations applied", "steps", steps)

			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to apply, 0 for all")

	return cmd
}
