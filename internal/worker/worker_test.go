package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/amqp"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

func TestHandle(t *testing.T) {
	owner := uuid.New()
	goal := uuid.New()
	errDB := errors.New("connection reset")

	tests := []struct {
		name    string
		msg     *amqp.ReconcileMessage
		setup   func(m *MockReconciler)
		wantErr error
	}{
		{
			name: "SingleGoal",
			msg:  &amqp.ReconcileMessage{OwnerID: owner, GoalID: goal},
			setup: func(m *MockReconciler) {
				m.EXPECT().ReconcileGoal(gomock.Any(), owner, goal).Return(&savings.Report{}, nil)
			},
		},
		{
			name: "AllGoals",
			msg:  &amqp.ReconcileMessage{OwnerID: owner},
			setup: func(m *MockReconciler) {
				m.EXPECT().Reconcile(gomock.Any(), owner).Return(&savings.Report{Applied: []uuid.UUID{uuid.New()}}, nil)
			},
		},
		{
			name: "GoneGoalIsDropped",
			msg:  &amqp.ReconcileMessage{OwnerID: owner, GoalID: goal},
			setup: func(m *MockReconciler) {
				m.EXPECT().ReconcileGoal(gomock.Any(), owner, goal).Return(nil, ledger.ErrGoalNotFound)
			},
		},
		{
			name: "FailureRequeues",
			msg:  &amqp.ReconcileMessage{OwnerID: owner, GoalID: goal},
			setup: func(m *MockReconciler) {
				m.EXPECT().ReconcileGoal(gomock.Any(), owner, goal).Return(nil, errDB)
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reconciler := NewMockReconciler(ctrl)
			tt.setup(reconciler)

			w := New(reconciler, NewMockConsumer(ctrl), slog.New(slog.NewTextHandler(io.Discard, nil)))

			err := w.Handle(context.Background(), tt.msg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRun_CancelIsClean(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumer := NewMockConsumer(ctrl)
	consumer.EXPECT().ConsumeReconcile(gomock.Any(), gomock.Any()).Return(context.Canceled)

	w := New(NewMockReconciler(ctrl), consumer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, w.Run(context.Background()))
}
