package database

import (
	"database/sql"
	"errors"
)

// Rollback rolls tx back. A transaction database/sql already ended, either on Commit or
// when its context was cancelled, counts as rolled back.
func Rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return Classify("rolling back", err)
	}

	return nil
}
