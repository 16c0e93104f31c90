package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *ledger.Account) error
	GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Account, error)
	ListAccounts(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Account, error)
	UpdateAccount(ctx context.Context, a *ledger.Account) error
	DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Type     ledger.AccountType
	Balance  decimal.Decimal
	Currency string
}

// UpdateParams changes only the fields that are set.
type UpdateParams struct {
	Name     *string
	Type     *ledger.AccountType
	Balance  *decimal.Decimal
	Currency *string
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*ledger.Account, error) {
	a := &ledger.Account{
		OwnerID:  ownerID,
		Name:     params.Name,
		Type:     params.Type,
		Balance:  params.Balance,
		Currency: params.Currency,
	}

	if err := ledger.ValidateAccount(a); err != nil {
		return nil, err
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Account, error) {
	return s.repo.GetAccount(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Account, error) {
	return s.repo.ListAccounts(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateParams) (*ledger.Account, error) {
	a, err := s.repo.GetAccount(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		a.Name = *params.Name
	}

	if params.Type != nil {
		a.Type = *params.Type
	}

	if params.Balance != nil {
		a.Balance = *params.Balance
	}

	if params.Currency != nil {
		a.Currency = strings.ToUpper(*params.Currency)
	}

	if err := ledger.ValidateAccount(a); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAccount(ctx, a); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, ownerID, id)
}

// TotalBalance adds up the balances of all the owner's accounts.
func (s *Service) TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	accounts, err := s.repo.ListAccounts(ctx, ownerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list accounts: %w", err)
	}

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}

	return total, nil
}
