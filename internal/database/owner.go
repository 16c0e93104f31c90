package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// CheckAffected explains an owner-scoped update or delete. When it touched no row, the
// row either does not exist (ledger.ErrNotFound) or belongs to someone else
// (ledger.ErrUnauthorized). table must be a trusted identifier.
func CheckAffected(ctx context.Context, db *sql.DB, res sql.Result, table string, ownerID, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return Classify("reading affected rows", err)
	}

	if n > 0 {
		return nil
	}

	var owner uuid.UUID

	err = db.QueryRowContext(ctx, `SELECT user_id FROM `+table+` WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", table, id, ledger.ErrNotFound)
	}

	if err != nil {
		return Classify("checking row owner", err)
	}

	if owner != ownerID {
		return fmt.Errorf("%s %s: %w", table, id, ledger.ErrUnauthorized)
	}

	return fmt.Errorf("%s %s: %w", table, id, ledger.ErrNotFound)
}
