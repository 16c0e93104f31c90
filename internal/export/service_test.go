package export

import (
	"bytes"
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

func day(d int) time.Time {
	return time.Date(2024, 11, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Statement(t *testing.T) {
	ctrl := gomock.NewController(t)
	txs := NewMockTransactionLister(ctrl)
	accounts := NewMockAccountLister(ctrl)
	categories := NewMockCategoryLister(ctrl)

	owner := uuid.New()
	checking := uuid.New()
	savings := uuid.New()
	food := uuid.New()

	filter := transaction.ListFilter{Search: "x"}

	txs.EXPECT().List(gomock.Any(), owner, filter).Return([]*ledger.Transaction{
		{ID: uuid.New(), Type: ledger.TypeExpense, Amount: decimal.RequireFromString("42.5"), Description: "Groceries, weekly", CategoryID: &food, AccountID: checking, Date: day(3)},
		{ID: uuid.New(), Type: ledger.TypeIncome, Amount: decimal.NewFromInt(2000), Description: "Salary", AccountID: checking, Date: day(1)},
		{ID: uuid.New(), Type: ledger.TypeTransfer, Amount: decimal.NewFromInt(300), Description: "Save", AccountID: checking, DestinationAccountID: &savings, Date: day(2)},
	}, nil)
	accounts.EXPECT().List(gomock.Any(), owner).Return([]*ledger.Account{{ID: checking, Name: "Checking"}, {ID: savings, Name: "Savings"}}, nil)
	categories.EXPECT().List(gomock.Any(), owner).Return([]*ledger.Category{{ID: food, Name: "Food"}}, nil)

	st, err := NewService(txs, accounts, categories).Statement(context.Background(), owner, filter)
	require.NoError(t, err)
	require.Len(t, st.Rows, 3)

	assert.Equal(t, "Food", st.Rows[0].Category)
	assert.Equal(t, "Checking", st.Rows[0].Account)
	assert.Equal(t, "Savings", st.Rows[2].Destination)
	assert.True(t, decimal.NewFromInt(2000).Equal(st.Totals.Income))
	assert.True(t, decimal.RequireFromString("42.5").Equal(st.Totals.Expense))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, st))

	want := "date,type,amount,description,raw_description,category,account,destination_account\n" +
		"2024-11-03,expense,-42.50,\"Groceries, weekly\",,Food,Checking,\n" +
		"2024-11-01,income,2000.00,Salary,,,Checking,\n" +
		"2024-11-02,transfer,300.00,Save,,,Checking,Savings\n"
	assert.Equal(t, want, buf.String())

	body := Summary(st)
	assert.Contains(t, body, "* 2024-11-03 | Groceries, weekly | -42.50 € | Food\n")
	assert.Contains(t, body, "* 2024-11-01 | Salary | +2000.00 € | Uncategorized\n")
	assert.Contains(t, body, "Net: 1957.50 €")
}

func TestService_StatementEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	txs := NewMockTransactionLister(ctrl)
	accounts := NewMockAccountLister(ctrl)
	categories := NewMockCategoryLister(ctrl)

	txs.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	accounts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	categories.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	st, err := NewService(txs, accounts, categories).Statement(context.Background(), uuid.New(), transaction.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, st.Rows)
	assert.True(t, st.Totals.Net.IsZero())
}

func TestService_StatementError(t *testing.T) {
	ctrl := gomock.NewController(t)
	txs := NewMockTransactionLister(ctrl)
	accounts := NewMockAccountLister(ctrl)
	categories := NewMockCategoryLister(ctrl)

	txs.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ledger.ErrBackendUnavailable)
	accounts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	categories.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := NewService(txs, accounts, categories).Statement(context.Background(), uuid.New(), transaction.ListFilter{})
	assert.True(t, errors.Is(err, ledger.ErrBackendUnavailable))
}
