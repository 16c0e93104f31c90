// Package export renders transactions as a CSV statement.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=export

type TransactionLister interface {
	List(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*ledger.Transaction, error)
}

type AccountLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Account, error)
}

type CategoryLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Category, error)
}

// Row is one statement line with names resolved.
type Row struct {
	Transaction *ledger.Transaction
	Account     string
	Destination string
	Category    string
}

// Statement is the exported listing plus its totals.
type Statement struct {
	Rows   []Row
	Totals summary.Totals
}

type Service struct {
	transactions TransactionLister
	accounts     AccountLister
	categories   CategoryLister
}

func NewService(transactions TransactionLister, accounts AccountLister, categories CategoryLister) *Service {
	return &Service{transactions: transactions, accounts: accounts, categories: categories}
}

// Statement lists the owner's transactions matching filter, newest first.
func (s *Service) Statement(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) (*Statement, error) {
	var (
		txs        []*ledger.Transaction
		accounts   []*ledger.Account
		categories []*ledger.Category
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		txs, err = s.transactions.List(gctx, ownerID, filter)

		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = s.accounts.List(gctx, ownerID)

		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.List(gctx, ownerID)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load statement: %w", err)
	}

	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	st := &Statement{Rows: make([]Row, 0, len(txs)), Totals: summary.Totals{Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}}

	for _, t := range txs {
		row := Row{Transaction: t, Account: accountNames[t.AccountID]}

		if t.DestinationAccountID != nil {
			row.Destination = accountNames[*t.DestinationAccountID]
		}

		if t.CategoryID != nil {
			row.Category = categoryNames[*t.CategoryID]
		}

		st.Rows = append(st.Rows, row)
	}

	if len(txs) > 0 {
		start, end := span(txs)
		st.Totals = summary.PeriodTotals(txs, start, end)
	}

	return st, nil
}

func span(txs []*ledger.Transaction) (time.Time, time.Time) {
	start, end := txs[0].Date, txs[0].Date

	for _, t := range txs[1:] {
		if t.Date.Before(start) {
			start = t.Date
		}

		if t.Date.After(end) {
			end = t.Date
		}
	}

	return start, end
}

var header = []string{"date", "type", "amount", "description", "raw_description", "category", "account", "destination_account"}

// WriteCSV writes st with a header row. Amounts are signed: expenses negative,
// transfers unsigned.
func WriteCSV(w io.Writer, st *Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range st.Rows {
		t := r.Transaction

		record := []string{
			t.Date.Format(time.DateOnly),
			string(t.Type),
			signed(t).StringFixed(2),
			t.Description,
			t.RawDescription,
			r.Category,
			r.Account,
			r.Destination,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Summary is a plain-text digest of st for pasting into an email.
func Summary(st *Statement) string {
	var sb strings.Builder

	for _, r := range st.Rows {
		t := r.Transaction

		category := r.Category
		if category == "" {
			category = "Uncategorized"
		}

		fmt.Fprintf(&sb, "* %s | %s | %s € | %s\n", t.Date.Format(time.DateOnly), t.Description, signedLabel(t), category)
	}

	fmt.Fprintf(&sb, "\nIncome: %s €\nExpense: %s €\nNet: %s €\n",
		st.Totals.Income.StringFixed(2), st.Totals.Expense.StringFixed(2), st.Totals.Net.StringFixed(2))

	return sb.String()
}

func signed(t *ledger.Transaction) decimal.Decimal {
	if t.Type == ledger.TypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

func signedLabel(t *ledger.Transaction) string {
	switch t.Type {
	case ledger.TypeIncome:
		return "+" + t.Amount.StringFixed(2)
	case ledger.TypeExpense:
		return "-" + t.Amount.StringFixed(2)
	}

	return t.Amount.StringFixed(2)
}
