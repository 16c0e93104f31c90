package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings/memory"
)

func newGoal(t *testing.T, s *memory.Store, owner uuid.UUID) *ledger.SavingsGoal {
	t.Helper()

	g := &ledger.SavingsGoal{
		OwnerID:       owner,
		Name:          "House",
		TargetAmount:  decimal.NewFromInt(100),
		CurrentAmount: decimal.Zero,
		TargetDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateGoal(context.Background(), g))

	return g
}

func TestStore_GetGoal_OwnerScoped(t *testing.T) {
	s := memory.New()
	owner := uuid.New()
	g := newGoal(t, s, owner)

	got, err := s.GetGoal(context.Background(), owner, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.Name, got.Name)

	_, err = s.GetGoal(context.Background(), uuid.New(), g.ID)
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	_, err = s.GetGoal(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	assert.ErrorIs(t, s.DeleteGoal(context.Background(), uuid.New(), g.ID), ledger.ErrUnauthorized)
	require.NoError(t, s.DeleteGoal(context.Background(), owner, g.ID))
	assert.ErrorIs(t, s.DeleteGoal(context.Background(), owner, g.ID), ledger.ErrNotFound)
}

func TestStore_LockGoal_Foreign(t *testing.T) {
	s := memory.New()
	g := newGoal(t, s, uuid.New())

	unit, err := s.BeginContribution(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = unit.LockGoal(context.Background(), g.ID)
	assert.ErrorIs(t, err, ledger.ErrGoalNotFound)
	require.NoError(t, unit.Rollback())
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	owner := uuid.New()
	g := newGoal(t, s, owner)

	unit, err := s.BeginContribution(ctx, owner)
	require.NoError(t, err)

	_, err = unit.LockGoal(ctx, g.ID)
	require.NoError(t, err)

	c := &ledger.Contribution{GoalID: g.ID, Amount: decimal.NewFromInt(30)}
	require.NoError(t, unit.InsertContribution(ctx, c))

	applied, err := unit.ApplyContribution(ctx, c)
	require.NoError(t, err)
	assert.True(t, applied)

	again, err := unit.ApplyContribution(ctx, c)
	require.NoError(t, err)
	assert.False(t, again)

	require.NoError(t, unit.Rollback())
	require.NoError(t, unit.Rollback())
	assert.Error(t, unit.Commit())

	got, err := s.GetGoal(ctx, owner, g.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentAmount.IsZero())

	list, err := s.ListContributions(ctx, owner, g.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The lock was released, so a new unit can take it.
	next, err := s.BeginContribution(ctx, owner)
	require.NoError(t, err)

	_, err = next.LockGoal(ctx, g.ID)
	require.NoError(t, err)
	require.NoError(t, next.Commit())
}
