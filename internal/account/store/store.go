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

const selectAccountColumns = `id, user_id, name, type, balance, currency, created_at`

func scanAccount(s scanner) (*ledger.Account, error) {
	var a ledger.Account

	var typeStr string

	if err := s.Scan(&a.ID, &a.OwnerID, &a.Name, &typeStr, &a.Balance, &a.Currency, &a.CreatedAt); err != nil {
		return nil, err
	}

	a.Type = ledger.AccountType(typeStr)

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *ledger.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, type, balance, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, a.OwnerID, a.Name, a.Type, a.Balance, a.Currency).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return database.Classify("creating account", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify("getting account", err)
	}

	if a.OwnerID != ownerID {
		return nil, fmt.Errorf("getting account: %w", ledger.ErrUnauthorized)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, database.Classify("listing accounts", err)
	}
	defer rows.Close()

	var accounts []*ledger.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating accounts", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *ledger.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, balance = $3, currency = $4
		WHERE id = $5 AND user_id = $6
	`

	res, err := s.db.ExecContext(ctx, query, a.Name, a.Type, a.Balance, a.Currency, a.ID, a.OwnerID)
	if err != nil {
		return database.Classify("updating account", err)
	}

	return database.CheckAffected(ctx, s.db, res, "accounts", a.OwnerID, a.ID)
}

func (s *Store) DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return database.Classify("deleting account", err)
	}

	return database.CheckAffected(ctx, s.db, res, "accounts", ownerID, id)
}
