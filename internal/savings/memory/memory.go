// Package memory is an in-process savings repository used as a test double for the
// savings service; the binaries always run on the Postgres store. Units of work buffer
// their writes and publish them on Commit, and a unit holds its goal's lock until it
// finishes, so it behaves like the Postgres store under concurrent contributions.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

var errTxDone = errors.New("memory: unit of work already finished")

type Store struct {
	mu            sync.Mutex
	goals         map[uuid.UUID]ledger.SavingsGoal
	contributions map[uuid.UUID]ledger.Contribution
	locks         map[uuid.UUID]*sync.Mutex
	now           func() time.Time
}

func New() *Store {
	return &Store{
		goals:         make(map[uuid.UUID]ledger.SavingsGoal),
		contributions: make(map[uuid.UUID]ledger.Contribution),
		locks:         make(map[uuid.UUID]*sync.Mutex),
		now:           time.Now,
	}
}

func (s *Store) CreateGoal(_ context.Context, g *ledger.SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if _, ok := s.goals[g.ID]; ok {
		return fmt.Errorf("creating savings goal: %w", ledger.ErrDuplicate)
	}

	g.CreatedAt = s.now()
	s.goals[g.ID] = *g

	return nil
}

func (s *Store) GetGoal(_ context.Context, ownerID, id uuid.UUID) (*ledger.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return nil, fmt.Errorf("getting savings goal: %w", ledger.ErrNotFound)
	}

	if g.OwnerID != ownerID {
		return nil, fmt.Errorf("getting savings goal: %w", ledger.ErrUnauthorized)
	}

	return &g, nil
}

func (s *Store) ListGoals(_ context.Context, ownerID uuid.UUID) ([]*ledger.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*ledger.SavingsGoal

	for _, g := range s.goals {
		if g.OwnerID == ownerID {
			out = append(out, &g)
		}
	}

	slices.SortFunc(out, func(a, b *ledger.SavingsGoal) int {
		if c := a.TargetDate.Compare(b.TargetDate); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out, nil
}

func (s *Store) DeleteGoal(_ context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return fmt.Errorf("deleting savings goal: %w", ledger.ErrNotFound)
	}

	if g.OwnerID != ownerID {
		return fmt.Errorf("deleting savings goal: %w", ledger.ErrUnauthorized)
	}

	delete(s.goals, id)

	for cid, c := range s.contributions {
		if c.GoalID == id {
			delete(s.contributions, cid)
		}
	}

	return nil
}

func (s *Store) ListContributions(_ context.Context, ownerID, goalID uuid.UUID) ([]*ledger.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*ledger.Contribution

	for _, c := range s.contributions {
		if c.OwnerID == ownerID && c.GoalID == goalID {
			out = append(out, &c)
		}
	}

	slices.SortFunc(out, func(a, b *ledger.Contribution) int {
		return cmp.Or(b.Date.Compare(a.Date), b.CreatedAt.Compare(a.CreatedAt))
	})

	return out, nil
}

func (s *Store) BeginContribution(_ context.Context, ownerID uuid.UUID) (savings.ContributionTx, error) {
	return &unit{store: s, ownerID: ownerID}, nil
}

func (s *Store) goalLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}

	return l
}

type unit struct {
	store   *Store
	ownerID uuid.UUID

	lock          *sync.Mutex
	goal          *ledger.SavingsGoal
	contributions map[uuid.UUID]*ledger.Contribution
	done          bool
}

func (u *unit) LockGoal(_ context.Context, goalID uuid.UUID) (*ledger.SavingsGoal, error) {
	if u.done {
		return nil, errTxDone
	}

	if u.goal != nil {
		if u.goal.ID != goalID {
			return nil, fmt.Errorf("memory: unit already holds goal %s", u.goal.ID)
		}

		g := *u.goal

		return &g, nil
	}

	lock := u.store.goalLock(goalID)
	lock.Lock()

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	g, ok := u.store.goals[goalID]
	if !ok || g.OwnerID != u.ownerID {
		lock.Unlock()
		return nil, fmt.Errorf("locking goal %s: %w", goalID, ledger.ErrGoalNotFound)
	}

	u.lock = lock
	u.goal = &g
	u.contributions = make(map[uuid.UUID]*ledger.Contribution)

	for id, c := range u.store.contributions {
		if c.GoalID == goalID {
			u.contributions[id] = &c
		}
	}

	out := g

	return &out, nil
}

func (u *unit) held(goalID uuid.UUID) error {
	if u.done {
		return errTxDone
	}

	if u.goal == nil || u.goal.ID != goalID {
		return fmt.Errorf("memory: goal %s is not locked", goalID)
	}

	return nil
}

func (u *unit) InsertContribution(_ context.Context, c *ledger.Contribution) error {
	if err := u.held(c.GoalID); err != nil {
		return err
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if _, ok := u.contributions[c.ID]; ok {
		return fmt.Errorf("inserting contribution: %w", ledger.ErrDuplicate)
	}

	c.OwnerID = u.ownerID
	c.CreatedAt = u.store.now()
	c.AppliedAt = nil

	staged := *c
	u.contributions[c.ID] = &staged

	return nil
}

func (u *unit) ApplyContribution(_ context.Context, c *ledger.Contribution) (bool, error) {
	if err := u.held(c.GoalID); err != nil {
		return false, err
	}

	staged, ok := u.contributions[c.ID]
	if !ok {
		return false, fmt.Errorf("applying contribution %s: %w", c.ID, ledger.ErrNotFound)
	}

	if !staged.Pending() {
		return false, nil
	}

	at := u.store.now()
	staged.AppliedAt = &at
	u.goal.CurrentAmount = u.goal.CurrentAmount.Add(staged.Amount)
	c.AppliedAt = &at

	return true, nil
}

func (u *unit) PendingContributions(_ context.Context, goalID uuid.UUID) ([]*ledger.Contribution, error) {
	if err := u.held(goalID); err != nil {
		return nil, err
	}

	var out []*ledger.Contribution

	for _, c := range u.contributions {
		if c.Pending() {
			cp := *c
			out = append(out, &cp)
		}
	}

	slices.SortFunc(out, func(a, b *ledger.Contribution) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out, nil
}

func (u *unit) AppliedTotal(_ context.Context, goalID uuid.UUID) (decimal.Decimal, error) {
	if err := u.held(goalID); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero

	for _, c := range u.contributions {
		if !c.Pending() {
			total = total.Add(c.Amount)
		}
	}

	return total, nil
}

func (u *unit) SetCurrentAmount(_ context.Context, goalID uuid.UUID, amount decimal.Decimal) error {
	if err := u.held(goalID); err != nil {
		return err
	}

	u.goal.CurrentAmount = amount

	return nil
}

func (u *unit) Commit() error {
	if u.done {
		return errTxDone
	}

	u.done = true

	if u.goal == nil {
		return nil
	}

	defer u.lock.Unlock()

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if _, ok := u.store.goals[u.goal.ID]; !ok {
		return fmt.Errorf("committing contribution: %w", ledger.ErrGoalNotFound)
	}

	u.store.goals[u.goal.ID] = *u.goal

	for id, c := range u.contributions {
		u.store.contributions[id] = *c
	}

	return nil
}

// Rollback of a finished unit is a no-op, as it is for the Postgres store.
func (u *unit) Rollback() error {
	if u.done {
		return nil
	}

	u.done = true

	if u.lock != nil {
		u.lock.Unlock()
	}

	return nil
}
