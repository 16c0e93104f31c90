package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// Transaction is a single posted money movement. Amount is always a non-negative
// magnitude, the sign follows from Type.
type Transaction struct {
	ID                   uuid.UUID
	OwnerID              uuid.UUID
	Type                 TransactionType
	Amount               decimal.Decimal
	Description          string
	RawDescription       string
	CategoryID           *uuid.UUID
	AccountID            uuid.UUID
	DestinationAccountID *uuid.UUID
	Date                 time.Time
	CreatedAt            time.Time
}

// ValidateTransaction checks t against the caller's own accounts.
func ValidateTransaction(t *Transaction, accounts []*Account) error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}

	switch t.Type {
	case TypeIncome, TypeExpense, TypeTransfer:
	default:
		return fmt.Errorf("%w: transaction type %q", ErrInvalidType, t.Type)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", ErrInvalidDate)
	}

	owned := make(map[uuid.UUID]struct{}, len(accounts))
	for _, a := range accounts {
		owned[a.ID] = struct{}{}
	}

	if _, ok := owned[t.AccountID]; !ok {
		return fmt.Errorf("%w: account %s", ErrInvalidReference, t.AccountID)
	}

	if t.Type != TypeTransfer {
		if t.DestinationAccountID != nil {
			return fmt.Errorf("%w: only transfers have a destination account", ErrInvalidTransfer)
		}

		return nil
	}

	if t.DestinationAccountID == nil {
		return fmt.Errorf("%w: destination account is required", ErrInvalidTransfer)
	}

	if *t.DestinationAccountID == t.AccountID {
		return fmt.Errorf("%w: destination must differ from source", ErrInvalidTransfer)
	}

	if _, ok := owned[*t.DestinationAccountID]; !ok {
		return fmt.Errorf("%w: destination account %s", ErrInvalidReference, *t.DestinationAccountID)
	}

	return nil
}
