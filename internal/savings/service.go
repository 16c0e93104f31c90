package savings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=savings
type Repository interface {
	CreateGoal(ctx context.Context, goal *ledger.SavingsGoal) error
	GetGoal(ctx context.Context, ownerID, id uuid.UUID) (*ledger.SavingsGoal, error)
	ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*ledger.SavingsGoal, error)
	DeleteGoal(ctx context.Context, ownerID, id uuid.UUID) error
	ListContributions(ctx context.Context, ownerID, goalID uuid.UUID) ([]*ledger.Contribution, error)

	BeginContribution(ctx context.Context, ownerID uuid.UUID) (ContributionTx, error)
}

// ContributionTx is a unit of work on a single goal. Nothing it writes is visible to
// others until Commit.
type ContributionTx interface {
	// LockGoal reads the goal and holds it until Commit or Rollback. It fails with
	// ledger.ErrGoalNotFound when the goal does not exist or is not the owner's.
	LockGoal(ctx context.Context, goalID uuid.UUID) (*ledger.SavingsGoal, error)
	InsertContribution(ctx context.Context, c *ledger.Contribution) error
	// ApplyContribution adds the amount of a pending contribution to its goal and marks it
	// applied. It reports false when c was already applied.
	ApplyContribution(ctx context.Context, c *ledger.Contribution) (bool, error)
	PendingContributions(ctx context.Context, goalID uuid.UUID) ([]*ledger.Contribution, error)
	AppliedTotal(ctx context.Context, goalID uuid.UUID) (decimal.Decimal, error)
	SetCurrentAmount(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) error
	Commit() error
	Rollback() error
}

// TransactionReader resolves the transaction a contribution is funded by.
type TransactionReader interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error)
}

// Notifier asks for a goal to be reconciled out of band.
type Notifier interface {
	PublishReconcile(ctx context.Context, ownerID, goalID uuid.UUID) error
}

type Service struct {
	repo         Repository
	transactions TransactionReader
	notifier     Notifier
	log          *slog.Logger
}

// NewService builds the savings service. notifier may be nil, in which case partial
// contributions are only logged.
func NewService(repo Repository, transactions TransactionReader, notifier Notifier) *Service {
	return &Service{
		repo:         repo,
		transactions: transactions,
		notifier:     notifier,
		log:          slog.Default().With("component", "savings"),
	}
}

type CreateGoalParams struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Priority      ledger.Priority
	Description   string
}

func (s *Service) CreateGoal(ctx context.Context, ownerID uuid.UUID, params CreateGoalParams) (*ledger.SavingsGoal, error) {
	goal := &ledger.SavingsGoal{
		OwnerID:       ownerID,
		Name:          params.Name,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: params.CurrentAmount,
		InitialAmount: params.CurrentAmount,
		TargetDate:    ledger.Day(params.TargetDate),
		Priority:      params.Priority,
		Description:   params.Description,
	}

	if goal.Name == "" {
		return nil, fmt.Errorf("%w: goal name", ledger.ErrMissingField)
	}

	if err := ledger.ValidateGoal(goal); err != nil {
		return nil, err
	}

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *Service) GetGoal(ctx context.Context, ownerID, id uuid.UUID) (*ledger.SavingsGoal, error) {
	return s.repo.GetGoal(ctx, ownerID, id)
}

func (s *Service) ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*ledger.SavingsGoal, error) {
	return s.repo.ListGoals(ctx, ownerID)
}

func (s *Service) DeleteGoal(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, ownerID, id)
}

func (s *Service) ListContributions(ctx context.Context, ownerID, goalID uuid.UUID) ([]*ledger.Contribution, error) {
	if _, err := s.repo.GetGoal(ctx, ownerID, goalID); err != nil {
		return nil, err
	}

	return s.repo.ListContributions(ctx, ownerID, goalID)
}

// GoalProgress returns the goal together with its progress figures as of today.
func (s *Service) GoalProgress(ctx context.Context, ownerID, goalID uuid.UUID, today time.Time) (*ledger.SavingsGoal, summary.Progress, error) {
	goal, err := s.repo.GetGoal(ctx, ownerID, goalID)
	if err != nil {
		return nil, summary.Progress{}, err
	}

	return goal, summary.GoalProgress(goal, today), nil
}

func (s *Service) Overview(ctx context.Context, ownerID uuid.UUID) (summary.GoalsOverview, error) {
	goals, err := s.repo.ListGoals(ctx, ownerID)
	if err != nil {
		return summary.GoalsOverview{}, err
	}

	return summary.OverviewOf(goals), nil
}

type ContributeParams struct {
	TransactionID uuid.UUID
	GoalID        uuid.UUID
	Amount        decimal.Decimal
	Notes         string
}

// ApplyContribution records a contribution funded by an existing transaction and adds its
// amount to the goal. The contribution record and the goal update become visible
// together or not at all. When that cannot be guaranteed the error wraps
// ledger.ErrPartialContribution and the goal is queued for reconciliation.
func (s *Service) ApplyContribution(ctx context.Context, ownerID uuid.UUID, params ContributeParams) (*ledger.Contribution, error) {
	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution must be greater than zero", ledger.ErrInvalidAmount)
	}

	tx, err := s.transactions.Get(ctx, ownerID, params.TransactionID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) || errors.Is(err, ledger.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: transaction %s", ledger.ErrInvalidReference, params.TransactionID)
		}

		return nil, fmt.Errorf("get transaction: %w", err)
	}

	unit, err := s.repo.BeginContribution(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("begin contribution: %w", err)
	}

	if _, err := unit.LockGoal(ctx, params.GoalID); err != nil {
		unit.Rollback()
		return nil, fmt.Errorf("lock goal: %w", err)
	}

	c := &ledger.Contribution{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		GoalID:        params.GoalID,
		TransactionID: tx.ID,
		Amount:        params.Amount,
		Date:          ledger.Day(tx.Date),
		Notes:         params.Notes,
	}

	if err := unit.InsertContribution(ctx, c); err != nil {
		return nil, s.abort(ctx, unit, c, fmt.Errorf("insert contribution: %w", err))
	}

	if _, err := unit.ApplyContribution(ctx, c); err != nil {
		return nil, s.abort(ctx, unit, c, fmt.Errorf("apply contribution: %w", err))
	}

	if err := unit.Commit(); err != nil {
		return nil, s.partial(ctx, c, fmt.Errorf("commit contribution: %w", err))
	}

	return c, nil
}

// abort rolls back a unit whose contribution may already be written. If the rollback
// itself fails the outcome is unknown.
func (s *Service) abort(ctx context.Context, unit ContributionTx, c *ledger.Contribution, cause error) error {
	if rbErr := unit.Rollback(); rbErr != nil {
		return s.partial(ctx, c, fmt.Errorf("%w (rollback: %v)", cause, rbErr))
	}

	return cause
}

// partial reports a contribution whose write may be half done. The cause is not wrapped
// so callers cannot mistake it for a retryable backend error.
func (s *Service) partial(ctx context.Context, c *ledger.Contribution, cause error) error {
	s.log.ErrorContext(ctx, "contribution left in unknown state",
		"owner_id", c.OwnerID,
		"goal_id", c.GoalID,
		"contribution_id", c.ID,
		"amount", c.Amount.String(),
		"error", cause,
	)

	if s.notifier != nil {
		if err := s.notifier.PublishReconcile(ctx, c.OwnerID, c.GoalID); err != nil {
			s.log.ErrorContext(ctx, "failed to request reconciliation", "goal_id", c.GoalID, "error", err)
		}
	}

	return fmt.Errorf("%w: contribution %s to goal %s: %v", ledger.ErrPartialContribution, c.ID, c.GoalID, cause)
}
