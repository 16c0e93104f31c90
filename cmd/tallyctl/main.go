package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/internal/app"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/logging"
)

var cfg *config.Config

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tallyctl",
		Short:         "Operate a tally ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			c, err := config.Load()
			if err != nil {
				return err
			}

			logging.Setup(os.Stderr, logging.Config{Level: c.App.LogLevel, Format: c.App.LogFormat})
			cfg = c

			return nil
		},
	}

	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(reconcileCmd())
	cmd.AddCommand(summaryCmd())
	cmd.AddCommand(tokenCmd())
	cmd.AddCommand(workerCmd())

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB(ctx context.Context) (*sql.DB, error) {
	return database.New(ctx, cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
}

// withServices opens the database, runs fn and closes it again.
func withServices(ctx context.Context, fn func(*app.Services) error) error {
	db, err := openDB(ctx)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	return fn(app.New(db, nil))
}

func ownerFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("owner")
	if raw == "" {
		raw = cfg.TUI.OwnerID
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --owner %q: %w", raw, err)
	}

	return id, nil
}

func addOwnerFlag(cmd *cobra.Command) {
	cmd.Flags().String("owner", "", "owner id (defaults to TALLY_OWNER_ID)")
}
