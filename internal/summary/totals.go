// Package summary holds the pure arithmetic behind every summary view: period totals,
// budget usage and savings goal progress. Nothing here touches storage.
package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Totals are the income and expense sums of a period.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Window is an inclusive range of calendar dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow normalizes start and end to calendar dates.
func NewWindow(start, end time.Time) Window {
	return Window{Start: ledger.Day(start), End: ledger.Day(end)}
}

// Contains reports whether the calendar date of t falls in the window.
func (w Window) Contains(t time.Time) bool {
	d := ledger.Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// PeriodTotals sums income and expense transactions dated within [start, end].
// Transfers move money between the owner's own accounts and count as neither.
func PeriodTotals(txs []*ledger.Transaction, start, end time.Time) Totals {
	w := NewWindow(start, end)

	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}

	for _, t := range txs {
		if !w.Contains(t.Date) {
			continue
		}

		switch t.Type {
		case ledger.TypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case ledger.TypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	totals.Net = totals.Income.Sub(totals.Expense)

	return totals
}
