package amqp

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (d *fakeDelivery) Ack(bool) error {
	d.acked = true
	return nil
}

func (d *fakeDelivery) Nack(_, requeue bool) error {
	d.nacked = true
	d.requeued = requeue

	return nil
}

func TestReconcileMessage_RoundTrip(t *testing.T) {
	msg := NewReconcileMessage(uuid.New(), uuid.New())

	body, err := msg.ToJSON()
	require.NoError(t, err)

	got, err := ReconcileMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, msg.OwnerID, got.OwnerID)
	assert.Equal(t, msg.GoalID, got.GoalID)
}

func TestReconcileMessageFromJSON_RequiresOwner(t *testing.T) {
	_, err := ReconcileMessageFromJSON([]byte(`{"goal_id":"` + uuid.NewString() + `"}`))
	assert.Error(t, err)
}

func TestDispatch(t *testing.T) {
	body, err := NewReconcileMessage(uuid.New(), uuid.New()).ToJSON()
	require.NoError(t, err)

	tests := []struct {
		name         string
		body         []byte
		handlerErr   error
		wantAck      bool
		wantRequeued bool
	}{
		{name: "Handled", body: body, wantAck: true},
		{name: "HandlerFails", body: body, handlerErr: errors.New("db down"), wantRequeued: true},
		{name: "Malformed", body: []byte("{"), wantRequeued: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDelivery{}

			dispatch(context.Background(), d, tt.body, func(context.Context, *ReconcileMessage) error {
				return tt.handlerErr
			})

			assert.Equal(t, tt.wantAck, d.acked)
			assert.Equal(t, !tt.wantAck, d.nacked)
			assert.Equal(t, tt.wantRequeued, d.requeued)
		})
	}
}
