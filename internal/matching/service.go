package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching

type Repository interface {
	// FindMatch returns the longest pattern contained in rawDescription, or nil.
	FindMatch(ctx context.Context, ownerID uuid.UUID, rawDescription string) (*Rule, error)
	CreateRule(ctx context.Context, r *Rule) error
	ListRules(ctx context.Context, ownerID uuid.UUID) ([]*Rule, error)
	DeleteRule(ctx context.Context, ownerID, id uuid.UUID) error
}

type CategoryReader interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Category, error)
}

type Service struct {
	repo       Repository
	categories CategoryReader
}

func NewService(repo Repository, categories CategoryReader) *Service {
	return &Service{repo: repo, categories: categories}
}

// Suggest returns the rule matching rawDescription, or nil when none does.
func (s *Service) Suggest(ctx context.Context, ownerID uuid.UUID, rawDescription string) (*Rule, error) {
	if strings.TrimSpace(rawDescription) == "" {
		return nil, nil
	}

	return s.repo.FindMatch(ctx, ownerID, rawDescription)
}

// Learn remembers that lines containing RawPattern belong to the category.
func (s *Service) Learn(ctx context.Context, ownerID uuid.UUID, params LearnParams) (*Rule, error) {
	pattern := strings.TrimSpace(params.RawPattern)
	if pattern == "" {
		return nil, fmt.Errorf("%w: raw pattern", ledger.ErrMissingField)
	}

	if _, err := s.categories.Get(ctx, ownerID, params.CategoryID); err != nil {
		if errors.Is(err, ledger.ErrNotFound) || errors.Is(err, ledger.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: category %s", ledger.ErrInvalidReference, params.CategoryID)
		}

		return nil, fmt.Errorf("get category: %w", err)
	}

	r := &Rule{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		RawPattern:  pattern,
		CategoryID:  params.CategoryID,
		Description: strings.TrimSpace(params.Description),
	}

	if err := s.repo.CreateRule(ctx, r); err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}

	return r, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Rule, error) {
	return s.repo.ListRules(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteRule(ctx, ownerID, id)
}
