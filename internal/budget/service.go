package budget

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	// UpsertBudget replaces the amount when the category already has a budget that month.
	UpsertBudget(ctx context.Context, b *ledger.Budget) error
	ListBudgets(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*ledger.Budget, error)
	DeleteBudget(ctx context.Context, ownerID, id uuid.UUID) error
}

type CategoryReader interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Category, error)
}

type TransactionLister interface {
	List(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*ledger.Transaction, error)
}

type Service struct {
	repo         Repository
	categories   CategoryReader
	transactions TransactionLister
}

func NewService(repo Repository, categories CategoryReader, transactions TransactionLister) *Service {
	return &Service{repo: repo, categories: categories, transactions: transactions}
}

type SetParams struct {
	CategoryID uuid.UUID
	Month      time.Time
	Amount     decimal.Decimal
}

// Set allocates an amount to an expense category for a month.
func (s *Service) Set(ctx context.Context, ownerID uuid.UUID, params SetParams) (*ledger.Budget, error) {
	b := &ledger.Budget{
		OwnerID:    ownerID,
		CategoryID: params.CategoryID,
		Month:      params.Month,
		Amount:     params.Amount,
	}

	if err := ledger.ValidateBudget(b); err != nil {
		return nil, err
	}

	c, err := s.categories.Get(ctx, ownerID, params.CategoryID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) || errors.Is(err, ledger.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: category %s", ledger.ErrInvalidReference, params.CategoryID)
		}

		return nil, fmt.Errorf("get category: %w", err)
	}

	if c.Type != ledger.CategoryExpense {
		return nil, fmt.Errorf("%w: only expense categories take a budget", ledger.ErrInvalidType)
	}

	if err := s.repo.UpsertBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*ledger.Budget, error) {
	return s.repo.ListBudgets(ctx, ownerID, ledger.MonthStart(month))
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, ownerID, id)
}

// Usage reports spending against budget per category for the month containing month,
// the most spent first.
func (s *Service) Usage(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]summary.Usage, error) {
	budgets, txs, w, err := s.monthData(ctx, ownerID, month)
	if err != nil {
		return nil, err
	}

	byCategory := summary.CategoryUsage(budgets, txs, w.Start, w.End)

	out := make([]summary.Usage, 0, len(byCategory))
	for _, u := range byCategory {
		out = append(out, u)
	}

	slices.SortFunc(out, func(a, b summary.Usage) int {
		return cmp.Or(b.Spent.Cmp(a.Spent), cmp.Compare(a.CategoryID.String(), b.CategoryID.String()))
	})

	return out, nil
}

// Overview compares the month's income with what has been budgeted.
func (s *Service) Overview(ctx context.Context, ownerID uuid.UUID, month time.Time) (summary.ZeroBased, error) {
	budgets, txs, w, err := s.monthData(ctx, ownerID, month)
	if err != nil {
		return summary.ZeroBased{}, err
	}

	income := summary.PeriodTotals(txs, w.Start, w.End).Income

	return summary.ZeroBasedOverview(income, budgets), nil
}

func (s *Service) monthData(ctx context.Context, ownerID uuid.UUID, month time.Time) ([]*ledger.Budget, []*ledger.Transaction, summary.Window, error) {
	w := summary.Month(month)

	budgets, err := s.repo.ListBudgets(ctx, ownerID, w.Start)
	if err != nil {
		return nil, nil, w, fmt.Errorf("list budgets: %w", err)
	}

	txs, err := s.transactions.List(ctx, ownerID, transaction.ListFilter{StartDate: &w.Start, EndDate: &w.End})
	if err != nil {
		return nil, nil, w, fmt.Errorf("list transactions: %w", err)
	}

	return budgets, txs, w, nil
}
