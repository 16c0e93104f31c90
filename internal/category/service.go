package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *ledger.Category) error
	GetCategory(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Category, error)
	ListCategories(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Category, error)
	DeleteCategory(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Type  ledger.CategoryType
	Color string
	Icon  string
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*ledger.Category, error) {
	c := &ledger.Category{
		OwnerID: ownerID,
		Name:    params.Name,
		Type:    params.Type,
		Color:   params.Color,
		Icon:    params.Icon,
	}

	if err := ledger.ValidateCategory(c); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Category, error) {
	return s.repo.GetCategory(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Category, error) {
	return s.repo.ListCategories(ctx, ownerID)
}

// Delete removes the category. Transactions keep existing without a category and its
// budgets are removed with it.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, ownerID, id)
}
