package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tally/internal/amqp"
	"github.com/MrJamesThe3rd/tally/internal/app"
	"github.com/MrJamesThe3rd/tally/internal/auth"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/database"
	tallyHttp "github.com/MrJamesThe3rd/tally/internal/http"
	accountHandler "github.com/MrJamesThe3rd/tally/internal/http/account"
	budgetHandler "github.com/MrJamesThe3rd/tally/internal/http/budget"
	categoryHandler "github.com/MrJamesThe3rd/tally/internal/http/category"
	dashboardHandler "github.com/MrJamesThe3rd/tally/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/tally/internal/http/export"
	rulesHandler "github.com/MrJamesThe3rd/tally/internal/http/rules"
	savingsHandler "github.com/MrJamesThe3rd/tally/internal/http/savings"
	statementHandler "github.com/MrJamesThe3rd/tally/internal/http/statement"
	txHandler "github.com/MrJamesThe3rd/tally/internal/http/transaction"
	"github.com/MrJamesThe3rd/tally/internal/logging"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

func main() {
	if err := run(); err != nil {
		slog.Error("api failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Setup(os.Stdout, logging.Config{Level: cfg.App.LogLevel, Format: cfg.App.LogFormat})

	if cfg.Auth.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	var notifier savings.Notifier

	if cfg.AMQP.URL != "" {
		client, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			return fmt.Errorf("connecting to broker: %w", err)
		}
		defer client.Close()

		notifier = client
	} else {
		slog.Warn("AMQP_URL not set, partial contributions will not be queued for reconciliation")
	}

	svc := app.New(db, notifier)
	authn := auth.New(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	router := tallyHttp.New(tallyHttp.Handlers{
		Accounts:     accountHandler.NewHandler(svc.Accounts),
		Categories:   categoryHandler.NewHandler(svc.Categories),
		Transactions: txHandler.NewHandler(svc.Transactions),
		Budgets:      budgetHandler.NewHandler(svc.Budgets),
		Goals:        savingsHandler.NewHandler(svc.Savings),
		Dashboard:    dashboardHandler.NewHandler(svc.Dashboard),
		Import:       statementHandler.NewHandler(svc.Importer, svc.Transactions),
		Rules:        rulesHandler.NewHandler(svc.Matching),
		Export:       exportHandler.NewHandler(svc.Export),
	}, authn.Middleware, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}
