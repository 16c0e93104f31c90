package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies where money is held.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
	AccountOther      AccountType = "other"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCreditCard, AccountCash, AccountInvestment, AccountOther:
		return true
	}

	return false
}

// DefaultCurrency is used when an account is created without one.
const DefaultCurrency = "USD"

// Account is a user's money container. Balance is maintained independently of the
// transactions posted against the account.
type Account struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	Currency  string
	CreatedAt time.Time
}

// ValidateAccount checks a new account before it is stored. It fills in the default
// type and currency.
func ValidateAccount(a *Account) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return fmt.Errorf("%w: account name", ErrMissingField)
	}

	if a.Type == "" {
		a.Type = AccountChecking
	}

	if !a.Type.Valid() {
		return fmt.Errorf("%w: account type %q", ErrInvalidType, a.Type)
	}

	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	if !isCurrencyCode(a.Currency) {
		return fmt.Errorf("%w: currency %q is not an ISO 4217 code", ErrInvalidReference, a.Currency)
	}

	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}

	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
