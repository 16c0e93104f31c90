package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const dbTimeout = 5 * time.Second

var (
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// FormatAmount formats a money amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatSigned formats a transaction amount with a sign for its direction. Transfers
// carry no sign.
func FormatSigned(tx *ledger.Transaction) string {
	switch tx.Type {
	case ledger.TypeIncome:
		return "+" + FormatAmount(tx.Amount)
	case ledger.TypeExpense:
		return "-" + FormatAmount(tx.Amount)
	}

	return FormatAmount(tx.Amount)
}

// FormatPct formats an optional percentage, "n/a" when there is none.
func FormatPct(p *decimal.Decimal) string {
	if p == nil {
		return "n/a"
	}

	return p.StringFixed(1) + "%"
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
