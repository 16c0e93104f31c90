// Package worker drains queued goal reconciliation requests.
package worker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/amqp"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
)

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=worker

type Reconciler interface {
	ReconcileGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*savings.Report, error)
	Reconcile(ctx context.Context, ownerID uuid.UUID) (*savings.Report, error)
}

type Consumer interface {
	ConsumeReconcile(ctx context.Context, handler amqp.Handler) error
}

type Worker struct {
	reconciler Reconciler
	consumer   Consumer
	log        *slog.Logger
}

func New(reconciler Reconciler, consumer Consumer, log *slog.Logger) *Worker {
	return &Worker{reconciler: reconciler, consumer: consumer, log: log}
}

// Run consumes until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	err := w.consumer.ConsumeReconcile(ctx, w.Handle)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// Handle reconciles the goal named by msg, or every goal of the owner when the
// message has no goal. Requests for goals that no longer exist are dropped.
func (w *Worker) Handle(ctx context.Context, msg *amqp.ReconcileMessage) error {
	var (
		report *savings.Report
		err    error
	)

	if msg.GoalID == uuid.Nil {
		report, err = w.reconciler.Reconcile(ctx, msg.OwnerID)
	} else {
		report, err = w.reconciler.ReconcileGoal(ctx, msg.OwnerID, msg.GoalID)
	}

	if errors.Is(err, ledger.ErrGoalNotFound) || errors.Is(err, ledger.ErrUnauthorized) {
		w.log.WarnContext(ctx, "dropping reconcile request",
			"owner_id", msg.OwnerID,
			"goal_id", msg.GoalID,
			"error", err)

		return nil
	}

	if err != nil {
		return err
	}

	w.log.InfoContext(ctx, "reconciled",
		"owner_id", msg.OwnerID,
		"goal_id", msg.GoalID,
		"applied", len(report.Applied),
		"repaired", len(report.Repaired))

	return nil
}
