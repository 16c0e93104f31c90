package store

import (
	"context"
	"database/sql"
	"fmt"

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

type scanner interface {
	Scan(dest ...any) error
}

const selectCategoryColumns = `id, user_id, name, type, color, icon, created_at`

func scanCategory(s scanner) (*ledger.Category, error) {
	var c ledger.Category

	var typeStr string

	if err := s.Scan(&c.ID, &c.OwnerID, &c.Name, &typeStr, &c.Color, &c.Icon, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.Type = ledger.CategoryType(typeStr)

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *ledger.Category) error {
	query := `
		INSERT INTO budget_categories (user_id, name, type, color, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.OwnerID, c.Name, c.Type, c.Color, c.Icon).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return database.Classify("creating category", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM budget_categories WHERE id = $1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify("getting category", err)
	}

	if c.OwnerID != ownerID {
		return nil, fmt.Errorf("getting category: %w", ledger.ErrUnauthorized)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM budget_categories WHERE user_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, database.Classify("listing categories", err)
	}
	defer rows.Close()

	var categories []*ledger.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating categories", err)
	}

	return categories, nil
}

func (s *Store) DeleteCategory(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budget_categories WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify("deleting category", err)
	}

	return database.CheckAffected(ctx, s.db, res, "budget_categories", ownerID, id)
}
