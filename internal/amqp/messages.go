package amqp

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReconcileMessage asks the worker to reconcile one goal of one owner.
type ReconcileMessage struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	GoalID    uuid.UUID `json:"goal_id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewReconcileMessage(ownerID, goalID uuid.UUID) *ReconcileMessage {
	return &ReconcileMessage{
		OwnerID:   ownerID,
		GoalID:    goalID,
		Timestamp: time.Now(),
	}
}

func (m *ReconcileMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReconcileMessageFromJSON(data []byte) (*ReconcileMessage, error) {
	var msg ReconcileMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	if msg.OwnerID == uuid.Nil {
		return nil, errors.New("reconcile message without owner")
	}

	return &msg, nil
}
