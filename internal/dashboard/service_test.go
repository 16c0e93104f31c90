package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/dashboard"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

func TestService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	today := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)

	balances := dashboard.NewMockBalances(ctrl)
	periods := dashboard.NewMockPeriods(ctrl)
	budgets := dashboard.NewMockBudgets(ctrl)
	goals := dashboard.NewMockGoals(ctrl)

	balances.EXPECT().TotalBalance(gomock.Any(), owner).Return(decimal.RequireFromString("12450"), nil)
	periods.EXPECT().SummarizePeriod(gomock.Any(), owner, start, end).Return(summary.PeriodTotals([]*ledger.Transaction{
		{Type: ledger.TypeIncome, Amount: decimal.NewFromInt(5000), Date: start},
		{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(3250), Date: start},
	}, start, end), nil)
	budgets.EXPECT().Overview(gomock.Any(), owner, start).Return(summary.ZeroBasedOverview(decimal.NewFromInt(5000), []*ledger.Budget{{Amount: decimal.NewFromInt(4500)}}), nil)
	budgets.EXPECT().Usage(gomock.Any(), owner, start).Return(nil, nil)
	goals.EXPECT().Overview(gomock.Any(), owner).Return(summary.GoalsOverview{TotalSaved: decimal.NewFromInt(6500), TotalTarget: decimal.NewFromInt(10000), Active: 1}, nil)

	got, err := dashboard.NewService(balances, periods, budgets, goals).Build(context.Background(), owner, today)
	require.NoError(t, err)

	assert.Equal(t, start, got.Month.Start)
	assert.True(t, decimal.NewFromInt(12450).Equal(got.TotalBalance))
	assert.True(t, decimal.NewFromInt(1750).Equal(got.Monthly.Net))
	assert.True(t, decimal.NewFromInt(500).Equal(got.Budget.Unallocated))
	assert.Equal(t, 1, got.Savings.Active)
}

func TestService_Build_FailsWhenAnyCardFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()

	balances := dashboard.NewMockBalances(ctrl)
	periods := dashboard.NewMockPeriods(ctrl)
	budgets := dashboard.NewMockBudgets(ctrl)
	goals := dashboard.NewMockGoals(ctrl)

	balances.EXPECT().TotalBalance(gomock.Any(), owner).Return(decimal.Zero, ledger.ErrBackendUnavailable)
	periods.EXPECT().SummarizePeriod(gomock.Any(), owner, gomock.Any(), gomock.Any()).Return(summary.Totals{}, nil).AnyTimes()
	budgets.EXPECT().Overview(gomock.Any(), owner, gomock.Any()).Return(summary.ZeroBased{}, nil).AnyTimes()
	budgets.EXPECT().Usage(gomock.Any(), owner, gomock.Any()).Return(nil, nil).AnyTimes()
	goals.EXPECT().Overview(gomock.Any(), owner).Return(summary.GoalsOverview{}, nil).AnyTimes()

	_, err := dashboard.NewService(balances, periods, budgets, goals).Build(context.Background(), owner, time.Now())
	assert.ErrorIs(t, err, ledger.ErrBackendUnavailable)
}
