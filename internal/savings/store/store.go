package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

const selectGoalColumns = `
	id, user_id, name, target_amount, current_amount, initial_amount, target_date,
	priority, description, created_at
`

func scanGoal(s scanner) (*ledger.SavingsGoal, error) {
	var g ledger.SavingsGoal

	var priority string

	if err := s.Scan(
		&g.ID, &g.OwnerID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.InitialAmount,
		&g.TargetDate, &priority, &g.Description, &g.CreatedAt,
	); err != nil {
		return nil, err
	}

	g.Priority = ledger.Priority(priority)
	g.TargetDate = ledger.Day(g.TargetDate)

	return &g, nil
}

const selectContributionColumns = `
	id, user_id, goal_id, transaction_id, amount, contribution_date, notes, applied_at, created_at
`

func scanContribution(s scanner) (*ledger.Contribution, error) {
	var c ledger.Contribution

	if err := s.Scan(
		&c.ID, &c.OwnerID, &c.GoalID, &c.TransactionID, &c.Amount, &c.Date, &c.Notes,
		&c.AppliedAt, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Date = ledger.Day(c.Date)

	return &c, nil
}

func (s *Store) CreateGoal(ctx context.Context, g *ledger.SavingsGoal) error {
	query := `
		INSERT INTO savings_goals (user_id, name, target_amount, current_amount, initial_amount, target_date, priority, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.OwnerID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.InitialAmount,
		g.TargetDate,
		g.Priority,
		g.Description,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return database.Classify("creating savings goal", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, ownerID, id uuid.UUID) (*ledger.SavingsGoal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM savings_goals WHERE id = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify("getting savings goal", err)
	}

	if g.OwnerID != ownerID {
		return nil, fmt.Errorf("getting savings goal: %w", ledger.ErrUnauthorized)
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*ledger.SavingsGoal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY target_date ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, database.Classify("listing savings goals", err)
	}
	defer rows.Close()

	var goals []*ledger.SavingsGoal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning savings goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating savings goals", err)
	}

	return goals, nil
}

func (s *Store) DeleteGoal(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify("deleting savings goal", err)
	}

	return database.CheckAffected(ctx, s.db, res, "savings_goals", ownerID, id)
}

func (s *Store) ListContributions(ctx context.Context, ownerID, goalID uuid.UUID) ([]*ledger.Contribution, error) {
	query := `SELECT ` + selectContributionColumns + `
		FROM goal_contributions
		WHERE user_id = $1 AND goal_id = $2
		ORDER BY contribution_date DESC, created_at DESC`

	return listContributions(ctx, s.db, query, ownerID, goalID)
}

func listContributions(ctx context.Context, q queryer, query string, args ...any) ([]*ledger.Contribution, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.Classify("listing contributions", err)
	}
	defer rows.Close()

	var out []*ledger.Contribution

	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating contributions", err)
	}

	return out, nil
}

type contributionTx struct {
	tx      *sql.Tx
	ownerID uuid.UUID
}

func (s *Store) BeginContribution(ctx context.Context, ownerID uuid.UUID) (savings.ContributionTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Classify("beginning contribution tx", err)
	}

	return &contributionTx{tx: dbTx, ownerID: ownerID}, nil
}

func (u *contributionTx) Commit() error   { return u.tx.Commit() }
func (u *contributionTx) Rollback() error { return database.Rollback(u.tx) }

func (u *contributionTx) LockGoal(ctx context.Context, goalID uuid.UUID) (*ledger.SavingsGoal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM savings_goals
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	g, err := scanGoal(u.tx.QueryRowContext(ctx, query, goalID, u.ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("locking goal %s: %w", goalID, ledger.ErrGoalNotFound)
		}

		return nil, database.Classify("locking goal", err)
	}

	return g, nil
}

func (u *contributionTx) InsertContribution(ctx context.Context, c *ledger.Contribution) error {
	query := `
		INSERT INTO goal_contributions (id, user_id, goal_id, transaction_id, amount, contribution_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := u.tx.QueryRowContext(ctx, query,
		c.ID,
		u.ownerID,
		c.GoalID,
		c.TransactionID,
		c.Amount,
		c.Date,
		c.Notes,
	).Scan(&c.CreatedAt)
	if err != nil {
		return database.Classify("inserting contribution", err)
	}

	return nil
}

// ApplyContribution marks the contribution applied and moves the goal in one statement,
// so neither can happen without the other.
func (u *contributionTx) ApplyContribution(ctx context.Context, c *ledger.Contribution) (bool, error) {
	query := `
		WITH applied AS (
			UPDATE goal_contributions
			SET applied_at = NOW()
			WHERE id = $1 AND user_id = $2 AND applied_at IS NULL
			RETURNING goal_id, amount, applied_at
		)
		UPDATE savings_goals g
		SET current_amount = g.current_amount + applied.amount
		FROM applied
		WHERE g.id = applied.goal_id
		RETURNING applied.applied_at
	`

	var appliedAt sql.NullTime

	err := u.tx.QueryRowContext(ctx, query, c.ID, u.ownerID).Scan(&appliedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, database.Classify("applying contribution", err)
	}

	c.AppliedAt = &appliedAt.Time

	return true, nil
}

func (u *contributionTx) PendingContributions(ctx context.Context, goalID uuid.UUID) ([]*ledger.Contribution, error) {
	query := `SELECT ` + selectContributionColumns + `
		FROM goal_contributions
		WHERE user_id = $1 AND goal_id = $2 AND applied_at IS NULL
		ORDER BY created_at ASC`

	return listContributions(ctx, u.tx, query, u.ownerID, goalID)
}

func (u *contributionTx) AppliedTotal(ctx context.Context, goalID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM goal_contributions
		WHERE user_id = $1 AND goal_id = $2 AND applied_at IS NOT NULL
	`

	var total decimal.Decimal
	if err := u.tx.QueryRowContext(ctx, query, u.ownerID, goalID).Scan(&total); err != nil {
		return decimal.Zero, database.Classify("summing contributions", err)
	}

	return total, nil
}

func (u *contributionTx) SetCurrentAmount(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) error {
	_, err := u.tx.ExecContext(ctx,
		`UPDATE savings_goals SET current_amount = $1 WHERE id = $2 AND user_id = $3`,
		amount, goalID, u.ownerID,
	)
	if err != nil {
		return database.Classify("setting goal amount", err)
	}

	return nil
}
