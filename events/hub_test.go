package events

import (
	"testing"

	"github.com/Keerthanaa24/SkipQ/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFor(userId, orderId string) models.Order {
	return models.Order{Order_id: orderId, User_id: userId, Status: models.StatusConfirmed}
}

func TestHubScopedDelivery(t *testing.T) {
	hub := NewHub()

	aliceCh, cancelAlice := hub.Subscribe("alice", false)
	defer cancelAlice()
	bobCh, cancelBob := hub.Subscribe("bob", false)
	defer cancelBob()

	hub.Publish(OrderEvent{Action: ActionOrderCreated, Order: orderFor("alice", "o1")})

	select {
	case event := <-aliceCh:
		assert.Equal(t, ActionOrderCreated, event.Action)
		assert.Equal(t, "o1", event.Order.Order_id)
	default:
		t.Fatal("alice should have received her own order event")
	}

	select {
	case event := <-bobCh:
		t.Fatalf("bob should not see alice's order, got %+v", event)
	default:
	}
}

func TestHubStaffReceivesAll(t *testing.T) {
	hub := NewHub()

	staffCh, cancel := hub.Subscribe("staff-1", true)
	defer cancel()

	hub.Publish(OrderEvent{Action: ActionOrderCreated, Order: orderFor("alice", "o1")})
	hub.Publish(OrderEvent{Action: ActionStatusUpdated, Order: orderFor("bob", "o2")})

	first := <-staffCh
	second := <-staffCh
	assert.Equal(t, "o1", first.Order.Order_id)
	assert.Equal(t, "o2", second.Order.Order_id)
	assert.Equal(t, ActionStatusUpdated, second.Action)
}

func TestHubCancel(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("alice", false)
	require.Equal(t, 1, hub.SubscriberCount())

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Channel is closed after cancel.
	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic or deliver.
	hub.Publish(OrderEvent{Action: ActionOrderCreated, Order: orderFor("alice", "o1")})

	// Cancel is idempotent.
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubFullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("alice", false)
	defer cancel()

	// One past the buffer; Publish must drop instead of blocking.
	for i := 0; i < 17; i++ {
		hub.Publish(OrderEvent{Action: ActionStatusUpdated, Order: orderFor("alice", "o1")})
	}
	assert.Len(t, ch, 16)
}
