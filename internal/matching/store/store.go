package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/matching"
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

const selectRuleColumns = `id, user_id, raw_pattern, category_id, description, created_at`

func scanRule(s scanner) (*matching.Rule, error) {
	var r matching.Rule
	if err := s.Scan(&r.ID, &r.OwnerID, &r.RawPattern, &r.CategoryID, &r.Description, &r.CreatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Store) FindMatch(ctx context.Context, ownerID uuid.UUID, rawDescription string) (*matching.Rule, error) {
	query := `
		SELECT ` + selectRuleColumns + `
		FROM category_rules
		WHERE user_id = $1 AND $2 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	r, err := scanRule(s.db.QueryRowContext(ctx, query, ownerID, rawDescription))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, database.Classify("finding rule", err)
	}

	return r, nil
}

func (s *Store) CreateRule(ctx context.Context, r *matching.Rule) error {
	query := `
		INSERT INTO category_rules (id, user_id, raw_pattern, category_id, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, r.ID, r.OwnerID, r.RawPattern, r.CategoryID, r.Description).Scan(&r.CreatedAt)
	if err != nil {
		return database.Classify("creating rule", err)
	}

	return nil
}

func (s *Store) ListRules(ctx context.Context, ownerID uuid.UUID) ([]*matching.Rule, error) {
	query := `SELECT ` + selectRuleColumns + ` FROM category_rules WHERE user_id = $1 ORDER BY raw_pattern ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, database.Classify("listing rules", err)
	}
	defer rows.Close()

	var rules []*matching.Rule

	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, database.Classify("scanning rule", err)
		}

		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating rules", err)
	}

	return rules, nil
}

func (s *Store) DeleteRule(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM category_rules WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify("deleting rule", err)
	}

	return database.CheckAffected(ctx, s.db, res, "category_rules", ownerID, id)
}
