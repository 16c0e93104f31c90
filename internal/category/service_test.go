package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/category"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantErr   error
	}{
		{
			name:   "Defaults",
			params: category.CreateParams{Name: "Groceries"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *ledger.Category) error {
						assert.Equal(t, ledger.CategoryExpense, c.Type)
						assert.Equal(t, ledger.DefaultCategoryColor, c.Color)
						assert.Equal(t, ledger.DefaultCategoryIcon, c.Icon)
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  category.CreateParams{Type: ledger.CategoryIncome},
			wantErr: ledger.ErrMissingField,
		},
		{
			name:    "UnknownType",
			params:  category.CreateParams{Name: "Misc", Type: "transfer"},
			wantErr: ledger.ErrInvalidType,
		},
		{
			name:   "Duplicate",
			params: category.CreateParams{Name: "Salary", Type: ledger.CategoryIncome},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(ledger.ErrDuplicate)
			},
			wantErr: ledger.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := category.NewService(repo).Create(context.Background(), uuid.New(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner, id := uuid.New(), uuid.New()

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().DeleteCategory(gomock.Any(), owner, id).Return(ledger.ErrNotFound)

	assert.ErrorIs(t, category.NewService(repo).Delete(context.Background(), owner, id), ledger.ErrNotFound)
}
