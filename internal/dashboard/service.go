// Package dashboard assembles the overview screen from the other services.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/tally/internal/summary"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=dashboard
type Balances interface {
	TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

type Periods interface {
	SummarizePeriod(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (summary.Totals, error)
}

type Budgets interface {
	Overview(ctx context.Context, ownerID uuid.UUID, month time.Time) (summary.ZeroBased, error)
	Usage(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]summary.Usage, error)
}

type Goals interface {
	Overview(ctx context.Context, ownerID uuid.UUID) (summary.GoalsOverview, error)
}

type Dashboard struct {
	Month        summary.Window
	TotalBalance decimal.Decimal
	Monthly      summary.Totals
	Budget       summary.ZeroBased
	Usage        []summary.Usage
	Savings      summary.GoalsOverview
}

type Service struct {
	balances Balances
	periods  Periods
	budgets  Budgets
	goals    Goals
}

func NewService(balances Balances, periods Periods, budgets Budgets, goals Goals) *Service {
	return &Service{balances: balances, periods: periods, budgets: budgets, goals: goals}
}

// Build loads every card for the month containing today. The queries run concurrently
// and the first failure cancels the rest.
func (s *Service) Build(ctx context.Context, ownerID uuid.UUID, today time.Time) (*Dashboard, error) {
	d := &Dashboard{Month: summary.Month(today)}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.balances.TotalBalance(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("total balance: %w", err)
		}

		d.TotalBalance = total

		return nil
	})

	g.Go(func() error {
		totals, err := s.periods.SummarizePeriod(ctx, ownerID, d.Month.Start, d.Month.End)
		if err != nil {
			return fmt.Errorf("monthly totals: %w", err)
		}

		d.Monthly = totals

		return nil
	})

	g.Go(func() error {
		overview, err := s.budgets.Overview(ctx, ownerID, d.Month.Start)
		if err != nil {
			return fmt.Errorf("budget overview: %w", err)
		}

		d.Budget = overview

		return nil
	})

	g.Go(func() error {
		usage, err := s.budgets.Usage(ctx, ownerID, d.Month.Start)
		if err != nil {
			return fmt.Errorf("budget usage: %w", err)
		}

		d.Usage = usage

		return nil
	})

	g.Go(func() error {
		overview, err := s.goals.Overview(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("savings overview: %w", err)
		}

		d.Savings = overview

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}
