package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func TestValidateTransaction(t *testing.T) {
	checking := &ledger.Account{ID: uuid.New()}
	savings := &ledger.Account{ID: uuid.New()}
	accounts := []*ledger.Account{checking, savings}
	foreign := uuid.New()
	date := time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		tx      ledger.Transaction
		wantErr error
	}

	tests := []testCase{
		{
			name: "Income",
			tx: ledger.Transaction{
				Type: ledger.TypeIncome, Amount: decimal.NewFromInt(5000), AccountID: checking.ID, Date: date,
			},
		},
		{
			name: "Transfer",
			tx: ledger.Transaction{
				Type: ledger.TypeTransfer, Amount: decimal.NewFromInt(100), AccountID: checking.ID,
				DestinationAccountID: &savings.ID, Date: date,
			},
		},
		{
			name: "ZeroAmount",
			tx: ledger.Transaction{
				Type: ledger.TypeExpense, Amount: decimal.Zero, AccountID: checking.ID, Date: date,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			tx: ledger.Transaction{
				Type: ledger.TypeExpense, Amount: decimal.NewFromInt(-3), AccountID: checking.ID, Date: date,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "ForeignAccount",
			tx: ledger.Transaction{
				Type: ledger.TypeExpense, Amount: decimal.NewFromInt(3), AccountID: foreign, Date: date,
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name: "TransferWithoutDestination",
			tx: ledger.Transaction{
				Type: ledger.TypeTransfer, Amount: decimal.NewFromInt(3), AccountID: checking.ID, Date: date,
			},
			wantErr: ledger.ErrInvalidTransfer,
		},
		{
			name: "TransferToSameAccount",
			tx: ledger.Transaction{
				Type: ledger.TypeTransfer, Amount: decimal.NewFromInt(3), AccountID: checking.ID,
				DestinationAccountID: &checking.ID, Date: date,
			},
			wantErr: ledger.ErrInvalidTransfer,
		},
		{
			name: "TransferToForeignAccount",
			tx: ledger.Transaction{
				Type: ledger.TypeTransfer, Amount: decimal.NewFromInt(3), AccountID: checking.ID,
				DestinationAccountID: &foreign, Date: date,
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name: "ExpenseWithDestination",
			tx: ledger.Transaction{
				Type: ledger.TypeExpense, Amount: decimal.NewFromInt(3), AccountID: checking.ID,
				DestinationAccountID: &savings.ID, Date: date,
			},
			wantErr: ledger.ErrInvalidTransfer,
		},
		{
			name: "UnknownType",
			tx: ledger.Transaction{
				Type: "refund", Amount: decimal.NewFromInt(3), AccountID: checking.ID, Date: date,
			},
			wantErr: ledger.ErrInvalidType,
		},
		{
			name: "MissingDate",
			tx: ledger.Transaction{
				Type: ledger.TypeIncome, Amount: decimal.NewFromInt(3), AccountID: checking.ID,
			},
			wantErr: ledger.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.ValidateTransaction(&tt.tx, accounts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, ledger.IsValidation(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateGoal(t *testing.T) {
	target := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		goal    ledger.SavingsGoal
		wantErr error
	}{
		{
			name: "Valid",
			goal: ledger.SavingsGoal{TargetAmount: decimal.NewFromInt(10000), CurrentAmount: decimal.NewFromInt(6500), TargetDate: target},
		},
		{
			name: "OverSavedIsAllowed",
			goal: ledger.SavingsGoal{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(250), TargetDate: target},
		},
		{
			name:    "ZeroTarget",
			goal:    ledger.SavingsGoal{TargetAmount: decimal.Zero, TargetDate: target},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "NegativeCurrent",
			goal:    ledger.SavingsGoal{TargetAmount: decimal.NewFromInt(1), CurrentAmount: decimal.NewFromInt(-1), TargetDate: target},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "MissingDate",
			goal:    ledger.SavingsGoal{TargetAmount: decimal.NewFromInt(1)},
			wantErr: ledger.ErrInvalidDate,
		},
		{
			name:    "UnknownPriority",
			goal:    ledger.SavingsGoal{TargetAmount: decimal.NewFromInt(1), TargetDate: target, Priority: "urgent"},
			wantErr: ledger.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.ValidateGoal(&tt.goal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, tt.goal.Priority)
		})
	}
}

func TestValidateAccount_Defaults(t *testing.T) {
	a := &ledger.Account{Name: "  Main Checking "}
	require.NoError(t, ledger.ValidateAccount(a))

	assert.Equal(t, "Main Checking", a.Name)
	assert.Equal(t, ledger.AccountChecking, a.Type)
	assert.Equal(t, ledger.DefaultCurrency, a.Currency)

	assert.ErrorIs(t, ledger.ValidateAccount(&ledger.Account{}), ledger.ErrMissingField)
	assert.ErrorIs(t, ledger.ValidateAccount(&ledger.Account{Name: "x", Type: "crypto"}), ledger.ErrInvalidType)
	assert.ErrorIs(t, ledger.ValidateAccount(&ledger.Account{Name: "x", Currency: "euro"}), ledger.ErrInvalidReference)
}

func TestValidateCategory_Defaults(t *testing.T) {
	c := &ledger.Category{Name: "Groceries"}
	require.NoError(t, ledger.ValidateCategory(c))

	assert.Equal(t, ledger.CategoryExpense, c.Type)
	assert.Equal(t, ledger.DefaultCategoryColor, c.Color)
	assert.Equal(t, ledger.DefaultCategoryIcon, c.Icon)

	assert.ErrorIs(t, ledger.ValidateCategory(&ledger.Category{Name: "x", Icon: "abc"}), ledger.ErrInvalidType)
}

func TestValidateBudget_NormalizesMonth(t *testing.T) {
	b := &ledger.Budget{
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromInt(600),
		Month:      time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, ledger.ValidateBudget(b))
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), b.Month)

	assert.ErrorIs(t, ledger.ValidateBudget(&ledger.Budget{Month: b.Month}), ledger.ErrInvalidReference)
}

func TestParseDay(t *testing.T) {
	d, err := ledger.ParseDay("2024-11-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC), d)

	_, err = ledger.ParseDay("16/11/2024")
	assert.ErrorIs(t, err, ledger.ErrInvalidDate)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, ledger.DaysBetween(a, b))
	assert.Equal(t, -2, ledger.DaysBetween(b, a))
	assert.Equal(t, 0, ledger.DaysBetween(a, a))
}
