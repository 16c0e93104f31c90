package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

// accountList is an AccountLister over a fixed slice.
type accountList []*ledger.Account

func (a accountList) List(context.Context, uuid.UUID) ([]*ledger.Account, error) {
	return a, nil
}

// categoryList is a CategoryLister over a fixed slice.
type categoryList []*ledger.Category

func (c categoryList) List(context.Context, uuid.UUID) ([]*ledger.Category, error) {
	return c, nil
}

var (
	owner      = uuid.New()
	stranger   = uuid.New()
	checking   = &ledger.Account{ID: uuid.New(), OwnerID: owner, Name: "Checking", Type: ledger.AccountChecking}
	savings    = &ledger.Account{ID: uuid.New(), OwnerID: owner, Name: "Savings", Type: ledger.AccountSavings}
	accounts   = accountList{checking, savings}
	groceries  = &ledger.Category{ID: uuid.New(), OwnerID: owner, Name: "Groceries", Type: ledger.CategoryExpense}
	categories = categoryList{groceries}

	strangersCategory = &ledger.Category{ID: uuid.New(), OwnerID: stranger, Name: "Medical", Type: ledger.CategoryExpense}
	strangersAccount  = &ledger.Account{ID: uuid.New(), OwnerID: stranger, Name: "Checking", Type: ledger.AccountChecking}
)

func TestService_Create(t *testing.T) {
	foreign := uuid.New()

	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					Amount:      decimal.NewFromInt(1200),
					Type:        ledger.TypeExpense,
					Description: "Rent",
					AccountID:   checking.ID,
					Date:        time.Date(2024, 11, 19, 9, 30, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						assert.Equal(t, owner, tx.OwnerID)
						assert.Equal(t, time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC), tx.Date)
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "Transfer",
			args: args{
				params: transaction.CreateParams{
					Amount:               decimal.NewFromInt(300),
					Type:                 ledger.TypeTransfer,
					AccountID:            checking.ID,
					DestinationAccountID: &savings.ID,
					Date:                 time.Now(),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "Categorized",
			args: args{
				params: transaction.CreateParams{
					Amount:     decimal.NewFromInt(80),
					Type:       ledger.TypeExpense,
					AccountID:  checking.ID,
					CategoryID: &groceries.ID,
					Date:       time.Now(),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						assert.Equal(t, groceries.ID, *tx.CategoryID)
						tx.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "ForeignCategory",
			args: args{
				params: transaction.CreateParams{
					Amount:     decimal.NewFromInt(10),
					Type:       ledger.TypeExpense,
					AccountID:  checking.ID,
					CategoryID: &strangersCategory.ID,
					Date:       time.Now(),
				},
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name: "UnknownCategory",
			args: args{
				params: transaction.CreateParams{
					Amount:     decimal.NewFromInt(10),
					Type:       ledger.TypeExpense,
					AccountID:  checking.ID,
					CategoryID: &foreign,
					Date:       time.Now(),
				},
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name: "TransferToForeignAccount",
			args: args{
				params: transaction.CreateParams{
					Amount:               decimal.NewFromInt(300),
					Type:                 ledger.TypeTransfer,
					AccountID:            checking.ID,
					DestinationAccountID: &strangersAccount.ID,
					Date:                 time.Now(),
				},
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name: "NegativeAmount",
			args: args{
				params: transaction.CreateParams{Amount: decimal.NewFromInt(-5), Type: ledger.TypeExpense, AccountID: checking.ID, Date: time.Now()},
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "ForeignAccount",
			args: args{
				params: transaction.CreateParams{Amount: decimal.NewFromInt(5), Type: ledger.TypeIncome, AccountID: foreign, Date: time.Now()},
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name: "TransferToSameAccount",
			args: args{
				params: transaction.CreateParams{
					Amount:               decimal.NewFromInt(5),
					Type:                 ledger.TypeTransfer,
					AccountID:            checking.ID,
					DestinationAccountID: &checking.ID,
					Date:                 time.Now(),
				},
			},
			wantErr: ledger.ErrInvalidTransfer,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{Amount: decimal.NewFromInt(5), Type: ledger.TypeIncome, AccountID: checking.ID, Date: time.Now()},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(ledger.ErrBackendUnavailable)
			},
			wantErr: ledger.ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, accounts, categories)
			got, err := svc.Create(context.Background(), owner, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List(t *testing.T) {
	search := transaction.ListFilter{Search: "coffee"}

	type testCase struct {
		name      string
		filter    transaction.ListFilter
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			filter: search,
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), owner, search).
					Return([]*ledger.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "Error",
			filter: transaction.ListFilter{},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), owner, transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, accounts, categories)
			got, err := svc.List(context.Background(), owner, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_SummarizePeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), owner, transaction.ListFilter{StartDate: &start, EndDate: &end}).
		Return([]*ledger.Transaction{
			{Type: ledger.TypeIncome, Amount: decimal.NewFromInt(5000), Date: start},
			{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(1200), Date: end},
			{Type: ledger.TypeTransfer, Amount: decimal.NewFromInt(700), Date: end},
		}, nil)

	svc := transaction.NewService(repo, accounts, categories)
	got, err := svc.SummarizePeriod(context.Background(), owner, start, end)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(5000).Equal(got.Income))
	assert.True(t, decimal.NewFromInt(1200).Equal(got.Expense))
	assert.True(t, decimal.NewFromInt(3800).Equal(got.Net))
}

func TestService_SummarizeWeekly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sunday := time.Date(2024, 11, 17, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), owner, transaction.ListFilter{StartDate: &sunday, EndDate: &saturday}).
		Return(nil, nil)

	svc := transaction.NewService(repo, accounts, categories)
	got, err := svc.SummarizeWeekly(context.Background(), owner, time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, sunday, got.Window.Start)
	assert.True(t, got.Totals.Net.IsZero())
}

func coffee(date time.Time) transaction.CreateParams {
	return transaction.CreateParams{
		Amount:         decimal.RequireFromString("3.50"),
		Type:           ledger.TypeExpense,
		Description:    "Coffee",
		RawDescription: "COFFEE SHOP",
		AccountID:      checking.ID,
		Date:           date,
	}
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{coffee(date)}

	repo.EXPECT().BeginImport(gomock.Any(), owner, date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	lunch := coffee(date)
	lunch.Amount = decimal.NewFromInt(20)
	lunch.Description = "Lunch"
	lunch.RawDescription = "LUNCH PLACE"

	params := []transaction.CreateParams{coffee(date), lunch}

	existing := &ledger.Transaction{
		ID:             uuid.New(),
		Amount:         decimal.RequireFromString("3.5"),
		Type:           ledger.TypeExpense,
		RawDescription: "COFFEE SHOP",
		AccountID:      checking.ID,
		Date:           date,
	}

	repo.EXPECT().BeginImport(gomock.Any(), owner, date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return([]*ledger.Transaction{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_InvalidLineWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	bad := coffee(time.Now())
	bad.AccountID = uuid.New()

	_, err := svc.ImportBatch(context.Background(), owner, []transaction.CreateParams{coffee(time.Now()), bad})
	assert.ErrorIs(t, err, ledger.ErrInvalidReference)
	assert.ErrorContains(t, err, "line 2")
}

func TestService_ImportBatch_ForeignCategoryWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	food := coffee(time.Now())
	food.CategoryID = &groceries.ID

	bad := coffee(time.Now())
	bad.CategoryID = &strangersCategory.ID

	_, err := svc.ImportBatch(context.Background(), owner, []transaction.CreateParams{food, bad})
	assert.ErrorIs(t, err, ledger.ErrInvalidReference)
	assert.ErrorContains(t, err, "line 2")
}

func TestService_CreateBatch_UnknownCategoryWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	missing := uuid.New()
	bad := coffee(time.Now())
	bad.CategoryID = &missing

	txs, err := svc.CreateBatch(context.Background(), owner, []transaction.CreateParams{bad})
	assert.ErrorIs(t, err, ledger.ErrInvalidReference)
	assert.Nil(t, txs)
}

func TestService_Create_UncategorizedSkipsCategoryLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	cats := transaction.NewMockCategoryLister(ctrl)
	svc := transaction.NewService(repo, accounts, cats)

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), owner, coffee(time.Now()))
	require.NoError(t, err)
}

func TestService_Create_CategoryLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	cats := transaction.NewMockCategoryLister(ctrl)
	svc := transaction.NewService(repo, accounts, cats)

	cats.EXPECT().List(gomock.Any(), owner).Return(nil, ledger.ErrBackendUnavailable)

	params := coffee(time.Now())
	params.CategoryID = &groceries.ID

	_, err := svc.Create(context.Background(), owner, params)
	assert.ErrorIs(t, err, ledger.ErrBackendUnavailable)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	result, err := svc.ImportBatch(context.Background(), owner, []transaction.CreateParams{})
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, accounts, categories)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{coffee(date)}

	repo.EXPECT().BeginImport(gomock.Any(), owner, date, date).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.True(t, decimal.RequireFromString("3.50").Equal(txs[0].Amount))
	assert.Equal(t, ledger.TypeExpense, txs[0].Type)
	assert.Equal(t, owner, txs[0].OwnerID)
}
