package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

func TestKeptParams(t *testing.T) {
	param := func(desc string) transaction.CreateParams {
		return transaction.CreateParams{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(1), Description: desc}
	}

	pending := []transaction.CreateParams{param("new")}
	conflicts := []transaction.Conflict{
		{Incoming: param("dup-a"), Existing: &ledger.Transaction{}},
		{Incoming: param("dup-b"), Existing: &ledger.Transaction{}},
	}

	got := keptParams(pending, conflicts, map[int]bool{1: true})

	assert.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Description)
	assert.Equal(t, "dup-b", got[1].Description)
	assert.Len(t, pending, 1)

	assert.Len(t, keptParams(nil, conflicts, map[int]bool{}), 0)
}
