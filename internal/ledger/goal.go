package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Priority ranks savings goals.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// SavingsGoal tracks progress towards a target amount. CurrentAmount may exceed
// TargetAmount. InitialAmount is what the goal started with; every later change to
// CurrentAmount comes from an applied Contribution.
type SavingsGoal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	InitialAmount decimal.Decimal
	TargetDate    time.Time
	Priority      Priority
	Description   string
	CreatedAt     time.Time
}

// Remaining is what is left to save. It is negative when the goal is over-saved.
func (g *SavingsGoal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// ValidateGoal checks the amounts, date and priority of g.
func ValidateGoal(g *SavingsGoal) error {
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: target amount must be greater than zero", ErrInvalidAmount)
	}

	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: current amount must not be negative", ErrInvalidAmount)
	}

	if g.TargetDate.IsZero() {
		return fmt.Errorf("%w: target date is required", ErrInvalidDate)
	}

	if g.Priority == "" {
		g.Priority = PriorityMedium
	}

	switch g.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("%w: priority %q", ErrInvalidType, g.Priority)
	}

	return nil
}

// Contribution links a transaction to a goal. AppliedAt is nil while the amount has not
// yet been added to the goal.
type Contribution struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	GoalID        uuid.UUID
	TransactionID uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Notes         string
	AppliedAt     *time.Time
	CreatedAt     time.Time
}

// Pending reports whether c still has to be added to its goal.
func (c *Contribution) Pending() bool {
	return c.AppliedAt == nil
}
