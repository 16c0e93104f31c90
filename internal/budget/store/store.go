package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertBudget(ctx context.Context, b *ledger.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, month, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, category_id, month) DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, b.OwnerID, b.CategoryID, b.Month, b.Amount).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return database.Classify("upserting budget", err)
	}

	return nil
}

func (s *Store) ListBudgets(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*ledger.Budget, error) {
	query := `
		SELECT id, user_id, category_id, month, amount, created_at
		FROM budgets
		WHERE user_id = $1 AND month = $2
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, ledger.MonthStart(month))
	if err != nil {
		return nil, database.Classify("listing budgets", err)
	}
	defer rows.Close()

	var budgets []*ledger.Budget

	for rows.Next() {
		var b ledger.Budget
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.CategoryID, &b.Month, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		b.Month = ledger.MonthStart(b.Month)
		budgets = append(budgets, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating budgets", err)
	}

	return budgets, nil
}

func (s *Store) DeleteBudget(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify("deleting budget", err)
	}

	return database.CheckAffected(ctx, s.db, res, "budgets", ownerID, id)
}
