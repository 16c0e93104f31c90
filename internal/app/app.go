// Package app wires the services shared by the binaries.
package app

import (
	"database/sql"

	"github.com/MrJamesThe3rd/tally/internal/account"
	accountStore "github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/tally/internal/budget/store"
	"github.com/MrJamesThe3rd/tally/internal/category"
	categoryStore "github.com/MrJamesThe3rd/tally/internal/category/store"
	"github.com/MrJamesThe3rd/tally/internal/dashboard"
	"github.com/MrJamesThe3rd/tally/internal/export"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/tally/internal/matching/store"
	"github.com/MrJamesThe3rd/tally/internal/savings"
	savingsStore "github.com/MrJamesThe3rd/tally/internal/savings/store"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
	txStore "github.com/MrJamesThe3rd/tally/internal/transaction/store"
)

type Services struct {
	Accounts     *account.Service
	Categories   *category.Service
	Transactions *transaction.Service
	Budgets      *budget.Service
	Savings      *savings.Service
	Dashboard    *dashboard.Service
	Matching     *matching.Service
	Importer     *importer.Service
	Export       *export.Service
}

// New builds every service over the Postgres stores. notifier may be nil, in which case
// partial contributions are only logged.
func New(db *sql.DB, notifier savings.Notifier) *Services {
	var (
		accountSvc  = account.NewService(accountStore.New(db))
		categorySvc = category.NewService(categoryStore.New(db))
		txSvc       = transaction.NewService(txStore.New(db), accountSvc, categorySvc)
		budgetSvc   = budget.NewService(budgetStore.New(db), categorySvc, txSvc)
		savingsSvc  = savings.NewService(savingsStore.New(db), txSvc, notifier)
		matchSvc    = matching.NewService(matchingStore.New(db), categorySvc)
	)

	return &Services{
		Accounts:     accountSvc,
		Categories:   categorySvc,
		Transactions: txSvc,
		Budgets:      budgetSvc,
		Savings:      savingsSvc,
		Dashboard:    dashboard.NewService(accountSvc, txSvc, budgetSvc, savingsSvc),
		Matching:     matchSvc,
		Importer:     importer.NewService(matchSvc),
		Export:       export.NewService(txSvc, accountSvc, categorySvc),
	}
}
