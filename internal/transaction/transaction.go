package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

type CreateParams struct {
	Type                 ledger.TransactionType
	Amount               decimal.Decimal
	Description          string
	RawDescription       string
	CategoryID           *uuid.UUID
	AccountID            uuid.UUID
	DestinationAccountID *uuid.UUID
	Date                 time.Time
}

// ListFilter narrows a listing. Zero values do not filter. Search matches the
// description or the category name, case-insensitively.
type ListFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
}

type ImportResult struct {
	Imported  []*ledger.Transaction
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *ledger.Transaction
}

// PeriodSummary is what the daily and weekly views show.
type PeriodSummary struct {
	Window       summary.Window
	Totals       summary.Totals
	Transactions []*ledger.Transaction
}
