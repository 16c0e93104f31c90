package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/budget"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type deps struct {
	repo       *budget.MockRepository
	categories *budget.MockCategoryReader
	txs        *budget.MockTransactionLister
}

func newService(t *testing.T) (*budget.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:       budget.NewMockRepository(ctrl),
		categories: budget.NewMockCategoryReader(ctrl),
		txs:        budget.NewMockTransactionLister(ctrl),
	}

	return budget.NewService(d.repo, d.categories, d.txs), d
}

func TestService_Set(t *testing.T) {
	owner := uuid.New()
	housing := &ledger.Category{ID: uuid.New(), OwnerID: owner, Name: "Housing", Type: ledger.CategoryExpense}
	salary := &ledger.Category{ID: uuid.New(), OwnerID: owner, Name: "Salary", Type: ledger.CategoryIncome}

	tests := []struct {
		name    string
		params  budget.SetParams
		setup   func(d deps)
		wantErr error
	}{
		{
			name:   "NormalizesMonth",
			params: budget.SetParams{CategoryID: housing.ID, Month: time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1500)},
			setup: func(d deps) {
				d.categories.EXPECT().Get(gomock.Any(), owner, housing.ID).Return(housing, nil)
				d.repo.EXPECT().UpsertBudget(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *ledger.Budget) error {
						assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), b.Month)
						b.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "NegativeAmount",
			params:  budget.SetParams{CategoryID: housing.ID, Month: time.Now(), Amount: decimal.NewFromInt(-1)},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:   "ForeignCategory",
			params: budget.SetParams{CategoryID: housing.ID, Month: time.Now(), Amount: decimal.NewFromInt(1)},
			setup: func(d deps) {
				d.categories.EXPECT().Get(gomock.Any(), owner, housing.ID).Return(nil, ledger.ErrUnauthorized)
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name:   "IncomeCategory",
			params: budget.SetParams{CategoryID: salary.ID, Month: time.Now(), Amount: decimal.NewFromInt(1)},
			setup: func(d deps) {
				d.categories.EXPECT().Get(gomock.Any(), owner, salary.ID).Return(salary, nil)
			},
			wantErr: ledger.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			got, err := svc.Set(context.Background(), owner, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func monthExpectations(d deps, owner uuid.UUID, budgets []*ledger.Budget, txs []*ledger.Transaction) {
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)

	d.repo.EXPECT().ListBudgets(gomock.Any(), owner, start).Return(budgets, nil)
	d.txs.EXPECT().List(gomock.Any(), owner, transaction.ListFilter{StartDate: &start, EndDate: &end}).Return(txs, nil)
}

func TestService_Usage(t *testing.T) {
	owner := uuid.New()
	housing, shopping := uuid.New(), uuid.New()

	svc, d := newService(t)
	monthExpectations(d, owner,
		[]*ledger.Budget{
			{CategoryID: housing, Amount: decimal.NewFromInt(1500)},
			{CategoryID: shopping, Amount: decimal.NewFromInt(400)},
		},
		[]*ledger.Transaction{
			{Type: ledger.TypeExpense, CategoryID: &housing, Amount: decimal.NewFromInt(1200), Date: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
			{Type: ledger.TypeExpense, CategoryID: &shopping, Amount: decimal.NewFromInt(520), Date: time.Date(2024, 11, 9, 0, 0, 0, 0, time.UTC)},
		},
	)

	got, err := svc.Usage(context.Background(), owner, time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, housing, got[0].CategoryID)
	assert.Equal(t, summary.StatusWarning, got[0].Status)
	assert.Equal(t, shopping, got[1].CategoryID)
	assert.Equal(t, summary.StatusOver, got[1].Status)
}

func TestService_Overview(t *testing.T) {
	owner := uuid.New()

	svc, d := newService(t)
	monthExpectations(d, owner,
		[]*ledger.Budget{{Amount: decimal.NewFromInt(4000)}, {Amount: decimal.NewFromInt(500)}},
		[]*ledger.Transaction{
			{Type: ledger.TypeIncome, Amount: decimal.NewFromInt(5000), Date: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
			{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(3250), Date: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)},
		},
	)

	got, err := svc.Overview(context.Background(), owner, time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(5000).Equal(got.Income))
	assert.True(t, decimal.NewFromInt(4500).Equal(got.Budgeted))
	assert.True(t, decimal.NewFromInt(500).Equal(got.Unallocated))
}
