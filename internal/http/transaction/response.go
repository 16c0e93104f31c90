package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type transactionResponse struct {
	ID                   uuid.UUID              `json:"id"`
	Type                 ledger.TransactionType `json:"type"`
	Amount               decimal.Decimal        `json:"amount"`
	Description          string                 `json:"description"`
	RawDescription       string                 `json:"raw_description,omitempty"`
	CategoryID           *uuid.UUID             `json:"category_id,omitempty"`
	AccountID            uuid.UUID              `json:"account_id"`
	DestinationAccountID *uuid.UUID             `json:"destination_account_id,omitempty"`
	Date                 string                 `json:"date"`
	CreatedAt            time.Time              `json:"created_at"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:                   tx.ID,
		Type:                 tx.Type,
		Amount:               tx.Amount,
		Description:          tx.Description,
		RawDescription:       tx.RawDescription,
		CategoryID:           tx.CategoryID,
		AccountID:            tx.AccountID,
		DestinationAccountID: tx.DestinationAccountID,
		Date:                 tx.Date.Format(time.DateOnly),
		CreatedAt:            tx.CreatedAt,
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type totalsResponse struct {
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

func toTotals(w summary.Window, t summary.Totals) totalsResponse {
	return totalsResponse{
		Start:   w.Start.Format(time.DateOnly),
		End:     w.End.Format(time.DateOnly),
		Income:  t.Income,
		Expense: t.Expense,
		Net:     t.Net,
	}
}

type periodResponse struct {
	totalsResponse
	Transactions []transactionResponse `json:"transactions"`
}

func toPeriod(p *transaction.PeriodSummary) periodResponse {
	return periodResponse{
		totalsResponse: toTotals(p.Window, p.Totals),
		Transactions:   toResponseList(p.Transactions),
	}
}
