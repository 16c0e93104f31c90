package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *ledger.Transaction) error
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error)
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*ledger.Transaction, error)

	BeginImport(ctx context.Context, ownerID uuid.UUID, minDate, maxDate time.Time) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*ledger.Transaction, error)
	CreateTransactions(ctx context.Context, txs []*ledger.Transaction) error
	Commit() error
	Rollback() error
}

// AccountLister returns the accounts a transaction may reference.
type AccountLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Account, error)
}

// CategoryLister returns the categories a transaction may reference.
type CategoryLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Category, error)
}

type Service struct {
	repo       Repository
	accounts   AccountLister
	categories CategoryLister
}

func NewService(repo Repository, accounts AccountLister, categories CategoryLister) *Service {
	return &Service{repo: repo, accounts: accounts, categories: categories}
}

// Create validates params against the owner's accounts and categories and stores the
// transaction. Nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*ledger.Transaction, error) {
	accounts, err := s.accounts.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	tx := toTransaction(ownerID, params)
	if err := ledger.ValidateTransaction(tx, accounts); err != nil {
		return nil, err
	}

	owned, err := s.ownedCategories(ctx, ownerID, []CreateParams{params})
	if err != nil {
		return nil, err
	}

	if err := checkCategory(params, owned); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	return s.repo.GetTransaction(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*ledger.Transaction, error) {
	return s.repo.ListTransactions(ctx, ownerID, filter)
}

// SummarizePeriod totals the owner's income and expenses between start and end inclusive.
func (s *Service) SummarizePeriod(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (summary.Totals, error) {
	ps, err := s.Summarize(ctx, ownerID, summary.NewWindow(start, end))
	if err != nil {
		return summary.Totals{}, err
	}

	return ps.Totals, nil
}

// Summarize lists the transactions of w, newest first, with their totals.
func (s *Service) Summarize(ctx context.Context, ownerID uuid.UUID, w summary.Window) (*PeriodSummary, error) {
	txs, err := s.repo.ListTransactions(ctx, ownerID, ListFilter{StartDate: &w.Start, EndDate: &w.End})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return &PeriodSummary{
		Window:       w,
		Totals:       summary.PeriodTotals(txs, w.Start, w.End),
		Transactions: txs,
	}, nil
}

func (s *Service) SummarizeDaily(ctx context.Context, ownerID uuid.UUID, day time.Time) (*PeriodSummary, error) {
	return s.Summarize(ctx, ownerID, summary.Day(day))
}

func (s *Service) SummarizeWeekly(ctx context.Context, ownerID uuid.UUID, day time.Time) (*PeriodSummary, error) {
	return s.Summarize(ctx, ownerID, summary.Week(day))
}

type dupKey struct {
	Date           string
	Amount         string
	Type           ledger.TransactionType
	AccountID      uuid.UUID
	RawDescription string
}

func keyOf(date time.Time, tx *ledger.Transaction) dupKey {
	return dupKey{
		Date:           date.Format(time.DateOnly),
		Amount:         tx.Amount.String(),
		Type:           tx.Type,
		AccountID:      tx.AccountID,
		RawDescription: tx.RawDescription,
	}
}

// ImportBatch stores imported statement lines unless some of them already exist. When
// duplicates are found nothing is written and the result lists the new lines and the
// conflicts so the caller can decide.
func (s *Service) ImportBatch(ctx context.Context, ownerID uuid.UUID, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	if err := s.validateBatch(ctx, ownerID, params); err != nil {
		return nil, err
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, ownerID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*ledger.Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[keyOf(d.Date, d)] = d
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		existing, found := lookup[keyOf(p.Date, toTransaction(ownerID, p))]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	txs := paramsToTransactions(ownerID, newParams)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: txs}, nil
}

// CreateBatch stores params without duplicate detection, after the caller resolved the
// conflicts of an ImportBatch.
func (s *Service) CreateBatch(ctx context.Context, ownerID uuid.UUID, params []CreateParams) ([]*ledger.Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	if err := s.validateBatch(ctx, ownerID, params); err != nil {
		return nil, err
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, ownerID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	txs := paramsToTransactions(ownerID, params)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return txs, nil
}

func (s *Service) validateBatch(ctx context.Context, ownerID uuid.UUID, params []CreateParams) error {
	accounts, err := s.accounts.List(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	for i, p := range params {
		if err := ledger.ValidateTransaction(toTransaction(ownerID, p), accounts); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	owned, err := s.ownedCategories(ctx, ownerID, params)
	if err != nil {
		return err
	}

	for i, p := range params {
		if err := checkCategory(p, owned); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return nil
}

// ownedCategories returns the owner's category ids, or nil when no param references a
// category.
func (s *Service) ownedCategories(ctx context.Context, ownerID uuid.UUID, params []CreateParams) (map[uuid.UUID]bool, error) {
	referenced := false

	for _, p := range params {
		if p.CategoryID != nil {
			referenced = true
			break
		}
	}

	if !referenced {
		return nil, nil
	}

	categories, err := s.categories.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	owned := make(map[uuid.UUID]bool, len(categories))
	for _, c := range categories {
		owned[c.ID] = true
	}

	return owned, nil
}

func checkCategory(p CreateParams, owned map[uuid.UUID]bool) error {
	if p.CategoryID == nil || owned[*p.CategoryID] {
		return nil
	}

	return fmt.Errorf("%w: category %s", ledger.ErrInvalidReference, *p.CategoryID)
}

func dateRange(params []CreateParams) (time.Time, time.Time) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return ledger.Day(minDate), ledger.Day(maxDate)
}

func toTransaction(ownerID uuid.UUID, p CreateParams) *ledger.Transaction {
	return &ledger.Transaction{
		OwnerID:              ownerID,
		Type:                 p.Type,
		Amount:               p.Amount,
		Description:          p.Description,
		RawDescription:       p.RawDescription,
		CategoryID:           p.CategoryID,
		AccountID:            p.AccountID,
		DestinationAccountID: p.DestinationAccountID,
		Date:                 ledger.Day(p.Date),
	}
}

func paramsToTransactions(ownerID uuid.UUID, params []CreateParams) []*ledger.Transaction {
	txs := make([]*ledger.Transaction, len(params))
	for i, p := range params {
		txs[i] = toTransaction(ownerID, p)
	}

	return txs
}
