package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, user_id, type, amount, description, raw_description, category_id,
// account_id, destination_account_id, transaction_date, created_at
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var typeStr string

	var rawDesc sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.OwnerID, &typeStr, &tx.Amount, &tx.Description, &rawDesc,
		&tx.CategoryID, &tx.AccountID, &tx.DestinationAccountID, &tx.Date, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = ledger.TransactionType(typeStr)
	tx.RawDescription = rawDesc.String
	tx.Date = ledger.Day(tx.Date)

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.user_id, t.type, t.amount, t.description, t.raw_description, t.category_id,
	t.account_id, t.destination_account_id, t.transaction_date, t.created_at
`

const insertTransaction = `
	INSERT INTO transactions (user_id, type, amount, description, raw_description, category_id, account_id, destination_account_id, transaction_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
`

func insertArgs(tx *ledger.Transaction) []any {
	var rawDesc sql.NullString
	if tx.RawDescription != "" {
		rawDesc = sql.NullString{String: tx.RawDescription, Valid: true}
	}

	return []any{
		tx.OwnerID,
		tx.Type,
		tx.Amount,
		tx.Description,
		rawDesc,
		tx.CategoryID,
		tx.AccountID,
		tx.DestinationAccountID,
		tx.Date,
	}
}

func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	err := s.db.QueryRowContext(ctx, insertTransaction, insertArgs(tx)...).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return database.Classify("creating transaction", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, database.Classify("getting transaction", err)
	}

	if tx.OwnerID != ownerID {
		return nil, fmt.Errorf("getting transaction: %w", ledger.ErrUnauthorized)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN budget_categories c ON t.category_id = c.id AND c.user_id = t.user_id
		WHERE t.user_id = $1`

	args := []any{ownerID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.transaction_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.transaction_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND (t.account_id = $%d OR t.destination_account_id = $%d)", argIdx, argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		query += fmt.Sprintf(" AND (t.description ILIKE $%d OR c.name ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+escapeLike(search)+"%")
		argIdx++
	}

	query += " ORDER BY t.transaction_date DESC, t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.Classify("listing transactions", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating transactions", err)
	}

	return txs, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func importLockKey(ownerID uuid.UUID, minDate, maxDate time.Time) int64 {
	h := fnv.New64a()
	h.Write(ownerID[:])
	h.Write([]byte(minDate.Format(time.DateOnly)))
	h.Write([]byte{0})
	h.Write([]byte(maxDate.Format(time.DateOnly)))

	return int64(h.Sum64())
}

type importTx struct {
	tx      *sql.Tx
	ownerID uuid.UUID
}

func (s *Store) BeginImport(ctx context.Context, ownerID uuid.UUID, minDate, maxDate time.Time) (transaction.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Classify("beginning import tx", err)
	}

	lockKey := importLockKey(ownerID, minDate, maxDate)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, database.Classify("acquiring import lock", err)
	}

	return &importTx{tx: dbTx, ownerID: ownerID}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return database.Rollback(itx.tx) }

func (itx *importTx) FindDuplicates(ctx context.Context, params []transaction.CreateParams) ([]*ledger.Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	type lookupKey struct {
		Date           string
		Amount         string
		Type           ledger.TransactionType
		AccountID      uuid.UUID
		RawDescription string
	}

	minDate := params[0].Date
	maxDate := params[0].Date
	keySet := make(map[lookupKey]struct{}, len(params))

	for _, p := range params {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}

		keySet[lookupKey{
			Date:           p.Date.Format(time.DateOnly),
			Amount:         p.Amount.String(),
			Type:           p.Type,
			AccountID:      p.AccountID,
			RawDescription: p.RawDescription,
		}] = struct{}{}
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.user_id = $1 AND t.transaction_date >= $2 AND t.transaction_date <= $3
		ORDER BY t.transaction_date ASC`

	rows, err := itx.tx.QueryContext(ctx, query, itx.ownerID, ledger.Day(minDate), ledger.Day(maxDate))
	if err != nil {
		return nil, database.Classify("finding duplicates", err)
	}
	defer rows.Close()

	var duplicates []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		k := lookupKey{
			Date:           tx.Date.Format(time.DateOnly),
			Amount:         tx.Amount.String(),
			Type:           tx.Type,
			AccountID:      tx.AccountID,
			RawDescription: tx.RawDescription,
		}

		if _, found := keySet[k]; !found {
			continue
		}

		duplicates = append(duplicates, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("iterating duplicate rows", err)
	}

	return duplicates, nil
}

func (itx *importTx) CreateTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	for _, tx := range txs {
		tx.OwnerID = itx.ownerID

		err := itx.tx.QueryRowContext(ctx, insertTransaction, insertArgs(tx)...).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return database.Classify("creating transaction", err)
		}
	}

	return nil
}
