package savings_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
	"github.com/MrJamesThe3rd/tally/internal/savings/memory"
)

// transactions is a TransactionReader backed by a map.
type transactions map[uuid.UUID]*ledger.Transaction

func (t transactions) Get(_ context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	tx, ok := t[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	if tx.OwnerID != ownerID {
		return nil, ledger.ErrUnauthorized
	}

	return tx, nil
}

type fixture struct {
	owner uuid.UUID
	store *memory.Store
	txs   transactions
	svc   *savings.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{owner: uuid.New(), store: memory.New(), txs: transactions{}}
	f.svc = savings.NewService(f.store, f.txs, nil)

	return f
}

func (f *fixture) goal(t *testing.T, current string) *ledger.SavingsGoal {
	t.Helper()

	g, err := f.svc.CreateGoal(context.Background(), f.owner, savings.CreateGoalParams{
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.RequireFromString(current),
		TargetDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return g
}

func (f *fixture) transaction(owner uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.txs[id] = &ledger.Transaction{
		ID:      id,
		OwnerID: owner,
		Type:    ledger.TypeTransfer,
		Amount:  decimal.NewFromInt(100),
		Date:    time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC),
	}

	return id
}

func (f *fixture) current(t *testing.T, goalID uuid.UUID) decimal.Decimal {
	t.Helper()

	g, err := f.store.GetGoal(context.Background(), f.owner, goalID)
	require.NoError(t, err)

	return g.CurrentAmount
}

func TestApplyContribution_IncreasesGoal(t *testing.T) {
	f := newFixture(t)
	g := f.goal(t, "100")

	c, err := f.svc.ApplyContribution(context.Background(), f.owner, savings.ContributeParams{
		TransactionID: f.transaction(f.owner),
		GoalID:        g.ID,
		Amount:        decimal.RequireFromString("250.50"),
	})
	require.NoError(t, err)

	assert.False(t, c.Pending())
	assert.True(t, decimal.RequireFromString("350.50").Equal(f.current(t, g.ID)))

	list, err := f.svc.ListContributions(context.Background(), f.owner, g.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestApplyContribution_ForeignGoal(t *testing.T) {
	f := newFixture(t)
	g := f.goal(t, "0")

	stranger := uuid.New()

	_, err := f.svc.ApplyContribution(context.Background(), stranger, savings.ContributeParams{
		TransactionID: f.transaction(stranger),
		GoalID:        g.ID,
		Amount:        decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, ledger.ErrGoalNotFound)
	assert.True(t, f.current(t, g.ID).IsZero())
}

func TestApplyContribution_ForeignTransaction(t *testing.T) {
	f := newFixture(t)
	g := f.goal(t, "0")

	_, err := f.svc.ApplyContribution(context.Background(), f.owner, savings.ContributeParams{
		TransactionID: f.transaction(uuid.New()),
		GoalID:        g.ID,
		Amount:        decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, ledger.ErrInvalidReference)
}

func TestApplyContribution_ConcurrentContributionsAllLand(t *testing.T) {
	f := newFixture(t)
	g := f.goal(t, "0")
	other := f.goal(t, "0")

	const n = 64

	amount := decimal.RequireFromString("12.34")

	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = f.transaction(f.owner)
	}

	var eg errgroup.Group

	for i := range n {
		eg.Go(func() error {
			target := g.ID
			if i%4 == 0 {
				target = other.ID
			}

			_, err := f.svc.ApplyContribution(context.Background(), f.owner, savings.ContributeParams{
				TransactionID: ids[i],
				GoalID:        target,
				Amount:        amount,
			})

			return err
		})
	}

	require.NoError(t, eg.Wait())

	assert.True(t, amount.Mul(decimal.NewFromInt(48)).Equal(f.current(t, g.ID)))
	assert.True(t, amount.Mul(decimal.NewFromInt(16)).Equal(f.current(t, other.ID)))

	report, err := f.svc.Reconcile(context.Background(), f.owner)
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestReconcile_AppliesPendingContribution(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.goal(t, "100")

	// A contribution that was written but never applied, as after a crash between the two.
	unit, err := f.store.BeginContribution(ctx, f.owner)
	require.NoError(t, err)

	_, err = unit.LockGoal(ctx, g.ID)
	require.NoError(t, err)

	pending := &ledger.Contribution{
		ID:            uuid.New(),
		GoalID:        g.ID,
		TransactionID: f.transaction(f.owner),
		Amount:        decimal.NewFromInt(50),
	}
	require.NoError(t, unit.InsertContribution(ctx, pending))
	require.NoError(t, unit.Commit())

	assert.True(t, decimal.NewFromInt(100).Equal(f.current(t, g.ID)))

	report, err := f.svc.Reconcile(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{pending.ID}, report.Applied)
	assert.Empty(t, report.Repaired)
	assert.True(t, decimal.NewFromInt(150).Equal(f.current(t, g.ID)))

	again, err := f.svc.Reconcile(ctx, f.owner)
	require.NoError(t, err)
	assert.True(t, again.Empty())
	assert.True(t, decimal.NewFromInt(150).Equal(f.current(t, g.ID)))
}

func TestReconcile_RepairsDrift(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.goal(t, "40")

	_, err := f.svc.ApplyContribution(ctx, f.owner, savings.ContributeParams{
		TransactionID: f.transaction(f.owner),
		GoalID:        g.ID,
		Amount:        decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	unit, err := f.store.BeginContribution(ctx, f.owner)
	require.NoError(t, err)

	_, err = unit.LockGoal(ctx, g.ID)
	require.NoError(t, err)
	require.NoError(t, unit.SetCurrentAmount(ctx, g.ID, decimal.NewFromInt(999)))
	require.NoError(t, unit.Commit())

	report, err := f.svc.Reconcile(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, report.Repaired, 1)
	assert.True(t, decimal.NewFromInt(999).Equal(report.Repaired[0].Recorded))
	assert.True(t, decimal.NewFromInt(100).Equal(report.Repaired[0].Expected))
	assert.True(t, decimal.NewFromInt(100).Equal(f.current(t, g.ID)))

	again, err := f.svc.Reconcile(ctx, f.owner)
	require.NoError(t, err)
	assert.True(t, again.Empty())
}

func TestReconcile_OnlyTouchesOwnGoals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.goal(t, "10")

	report, err := f.svc.Reconcile(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, report.Empty())
	assert.True(t, decimal.NewFromInt(10).Equal(f.current(t, g.ID)))
}
