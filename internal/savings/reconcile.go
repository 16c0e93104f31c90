package savings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Drift is a goal whose current amount disagreed with its contribution history.
type Drift struct {
	GoalID   uuid.UUID
	Recorded decimal.Decimal
	Expected decimal.Decimal
}

// Report lists what a reconciliation run changed. An empty report means every goal
// already matched its contributions.
type Report struct {
	Applied  []uuid.UUID
	Repaired []Drift
}

func (r *Report) Empty() bool {
	return len(r.Applied) == 0 && len(r.Repaired) == 0
}

func (r *Report) merge(o *Report) {
	r.Applied = append(r.Applied, o.Applied...)
	r.Repaired = append(r.Repaired, o.Repaired...)
}

// Reconcile brings every goal of the owner back in line with its contributions. Pending
// contributions are applied, then any goal whose current amount differs from its initial
// amount plus all applied contributions is reset to that sum. Running it again right
// away changes nothing.
func (s *Service) Reconcile(ctx context.Context, ownerID uuid.UUID) (*Report, error) {
	goals, err := s.repo.ListGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	report := &Report{}

	var errs []error

	for _, g := range goals {
		r, err := s.ReconcileGoal(ctx, ownerID, g.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("goal %s: %w", g.ID, err))
			continue
		}

		report.merge(r)
	}

	return report, errors.Join(errs...)
}

// ReconcileGoal reconciles a single goal under its lock.
func (s *Service) ReconcileGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*Report, error) {
	unit, err := s.repo.BeginContribution(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer unit.Rollback()

	goal, err := unit.LockGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("lock goal: %w", err)
	}

	pending, err := unit.PendingContributions(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("list pending contributions: %w", err)
	}

	report := &Report{}
	current := goal.CurrentAmount

	for _, c := range pending {
		applied, err := unit.ApplyContribution(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("apply contribution %s: %w", c.ID, err)
		}

		if applied {
			current = current.Add(c.Amount)
			report.Applied = append(report.Applied, c.ID)
		}
	}

	total, err := unit.AppliedTotal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("sum contributions: %w", err)
	}

	expected := goal.InitialAmount.Add(total)
	if !current.Equal(expected) {
		if err := unit.SetCurrentAmount(ctx, goalID, expected); err != nil {
			return nil, fmt.Errorf("repair goal: %w", err)
		}

		report.Repaired = append(report.Repaired, Drift{GoalID: goalID, Recorded: current, Expected: expected})
	}

	if report.Empty() {
		return report, nil
	}

	if err := unit.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}

	for _, d := range report.Repaired {
		s.log.WarnContext(ctx, "repaired goal drift",
			"goal_id", d.GoalID,
			"recorded", d.Recorded.String(),
			"expected", d.Expected.String(),
		)
	}

	if len(report.Applied) > 0 {
		s.log.InfoContext(ctx, "applied pending contributions", "goal_id", goalID, "count", len(report.Applied))
	}

	return report, nil
}
