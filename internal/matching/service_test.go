package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func TestService_Learn(t *testing.T) {
	owner := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name    string
		params  LearnParams
		setup   func(repo *MockRepository, cats *MockCategoryReader)
		wantErr error
	}{
		{
			name:   "Success",
			params: LearnParams{RawPattern: "  UBER ", CategoryID: categoryID, Description: "Uber"},
			setup: func(repo *MockRepository, cats *MockCategoryReader) {
				cats.EXPECT().Get(gomock.Any(), owner, categoryID).Return(&ledger.Category{ID: categoryID}, nil)
				repo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *Rule) error {
					assert.Equal(t, "UBER", r.RawPattern)
					assert.Equal(t, owner, r.OwnerID)

					return nil
				})
			},
		},
		{
			name:    "EmptyPattern",
			params:  LearnParams{RawPattern: " ", CategoryID: categoryID},
			setup:   func(*MockRepository, *MockCategoryReader) {},
			wantErr: ledger.ErrMissingField,
		},
		{
			name:   "ForeignCategory",
			params: LearnParams{RawPattern: "UBER", CategoryID: categoryID},
			setup: func(_ *MockRepository, cats *MockCategoryReader) {
				cats.EXPECT().Get(gomock.Any(), owner, categoryID).Return(nil, ledger.ErrUnauthorized)
			},
			wantErr: ledger.ErrInvalidReference,
		},
		{
			name:   "BackendDown",
			params: LearnParams{RawPattern: "UBER", CategoryID: categoryID},
			setup: func(_ *MockRepository, cats *MockCategoryReader) {
				cats.EXPECT().Get(gomock.Any(), owner, categoryID).Return(nil, ledger.ErrBackendUnavailable)
			},
			wantErr: ledger.ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			cats := NewMockCategoryReader(ctrl)
			tt.setup(repo, cats)

			rule, err := NewService(repo, cats).Learn(context.Background(), owner, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, rule.ID)
		})
	}
}

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	owner := uuid.New()
	want := &Rule{RawPattern: "UBER"}

	repo.EXPECT().FindMatch(gomock.Any(), owner, "UBER *TRIP").Return(want, nil)

	svc := NewService(repo, NewMockCategoryReader(ctrl))

	got, err := svc.Suggest(context.Background(), owner, "UBER *TRIP")
	require.NoError(t, err)
	assert.Same(t, want, got)

	got, err = svc.Suggest(context.Background(), owner, "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_SuggestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	errDB := errors.New("boom")

	repo.EXPECT().FindMatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errDB)

	_, err := NewService(repo, NewMockCategoryReader(ctrl)).Suggest(context.Background(), uuid.New(), "X")
	assert.ErrorIs(t, err, errDB)
}
