package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is the amount allocated to a category for one month.
type Budget struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Month      time.Time // first day of the month
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// ValidateBudget checks b and normalizes Month to the first of the month.
func ValidateBudget(b *Budget) error {
	if b.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: category is required", ErrInvalidReference)
	}

	if b.Amount.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidAmount)
	}

	if b.Month.IsZero() {
		return fmt.Errorf("%w: budget month is required", ErrInvalidDate)
	}

	b.Month = MonthStart(b.Month)

	return nil
}
