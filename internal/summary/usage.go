package summary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Status buckets a category's spending against its budget.
type Status string

const (
	StatusOnTrack Status = "on_track"
	StatusWarning Status = "warning"
	StatusOver    Status = "over"
	// StatusUnbudgeted is used when nothing was budgeted, so no percentage exists.
	StatusUnbudgeted Status = "unbudgeted"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// Usage is a category's budget consumption. Percentage is nil when Budgeted is zero.
type Usage struct {
	CategoryID uuid.UUID
	Budgeted   decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage *decimal.Decimal
	Status     Status
}

// CategoryUsage matches expense transactions dated within [start, end] against the
// budgets. Categories with spending but no budget are reported with a zero budget.
func CategoryUsage(budgets []*ledger.Budget, txs []*ledger.Transaction, start, end time.Time) map[uuid.UUID]Usage {
	w := NewWindow(start, end)

	usage := make(map[uuid.UUID]Usage, len(budgets))

	for _, b := range budgets {
		u := usage[b.CategoryID]
		u.CategoryID = b.CategoryID
		u.Budgeted = u.Budgeted.Add(b.Amount)
		usage[b.CategoryID] = u
	}

	for _, t := range txs {
		if t.Type != ledger.TypeExpense || t.CategoryID == nil || !w.Contains(t.Date) {
			continue
		}

		u := usage[*t.CategoryID]
		u.CategoryID = *t.CategoryID
		u.Spent = u.Spent.Add(t.Amount)
		usage[*t.CategoryID] = u
	}

	for id, u := range usage {
		u.Remaining = u.Budgeted.Sub(u.Spent)
		u.Percentage = Percentage(u.Spent, u.Budgeted)
		u.Status = statusOf(u.Percentage)
		usage[id] = u
	}

	return usage
}

// Percentage returns part/whole×100, or nil when whole is zero.
func Percentage(part, whole decimal.Decimal) *decimal.Decimal {
	if whole.IsZero() {
		return nil
	}

	p := part.Div(whole).Mul(hundred)

	return &p
}

func statusOf(pct *decimal.Decimal) Status {
	switch {
	case pct == nil:
		return StatusUnbudgeted
	case pct.GreaterThanOrEqual(hundred):
		return StatusOver
	case pct.GreaterThanOrEqual(warningThreshold):
		return StatusWarning
	}

	return StatusOnTrack
}

// ZeroBased compares a period's income with what has been allocated to categories.
// A zero-based budget is complete when Unallocated is zero.
type ZeroBased struct {
	Income       decimal.Decimal
	Budgeted     decimal.Decimal
	Unallocated  decimal.Decimal
	AllocatedPct *decimal.Decimal
}

// ZeroBasedOverview sums the budgets and compares them with income.
func ZeroBasedOverview(income decimal.Decimal, budgets []*ledger.Budget) ZeroBased {
	budgeted := decimal.Zero
	for _, b := range budgets {
		budgeted = budgeted.Add(b.Amount)
	}

	return ZeroBased{
		Income:       income,
		Budgeted:     budgeted,
		Unallocated:  income.Sub(budgeted),
		AllocatedPct: Percentage(budgeted, income),
	}
}
