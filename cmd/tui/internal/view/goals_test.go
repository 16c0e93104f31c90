package view

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func TestContributionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Partial", fmt.Errorf("applying: %w", ledger.ErrPartialContribution), "Press x to reconcile"},
		{"Unavailable", fmt.Errorf("begin: %w", ledger.ErrBackendUnavailable), "nothing was saved"},
		{"Validation", fmt.Errorf("%w: amount", ledger.ErrInvalidAmount), "Rejected"},
		{"Other", ledger.ErrGoalNotFound, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, contributionError(tt.err), tt.want)
		})
	}
}

func TestGoalRows(t *testing.T) {
	today := date(2024, 11, 20)
	goals := []*ledger.SavingsGoal{
		{
			Name:          "Holiday",
			Priority:      ledger.PriorityHigh,
			TargetAmount:  decimal.RequireFromString("5000"),
			CurrentAmount: decimal.RequireFromString("2000"),
			TargetDate:    date(2024, 12, 20),
		},
		{
			Name:          "Late",
			Priority:      ledger.PriorityLow,
			TargetAmount:  decimal.RequireFromString("100"),
			CurrentAmount: decimal.RequireFromString("40"),
			TargetDate:    today.AddDate(0, 0, -3),
		},
	}

	rows := goalRows(goals, today)
	require.Len(t, rows, 2)

	assert.Equal(t, "Holiday", rows[0][0])
	assert.Equal(t, "40.0%", rows[0][4])
	assert.Equal(t, "30", rows[0][6])
	assert.Equal(t, "3000.00", rows[0][7])

	assert.Equal(t, "late", rows[1][6])
	assert.Equal(t, "60.00", rows[1][7])
}

func TestTxDraft_CreateParams(t *testing.T) {
	d := &txDraft{Type: ledger.TypeExpense, Amount: " 12.50 ", Description: " Lunch ", Date: "2024-03-02"}

	p, err := d.createParams()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(p.Amount))
	assert.Equal(t, "Lunch", p.Description)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), p.Date)
	assert.Nil(t, p.CategoryID)
	assert.Nil(t, p.DestinationAccountID)

	d.Amount = "twelve"
	_, err = d.createParams()
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)
}
