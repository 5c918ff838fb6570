package events

import (
	"sync"

	"github.com/Keerthanaa24/SkipQ/models"
)

// Event actions published on the order stream.
const (
	ActionOrderCreated  = "order_created"
	ActionStatusUpdated = "status_updated"
)

// OrderEvent is pushed to subscribers whenever an order is created or
// its status advances.
type OrderEvent struct {
	Action string       `json:"action"`
	Order  models.Order `json:"order"`
}

type subscriber struct {
	ch     chan OrderEvent
	userId string
	all    bool
}

// Hub fans order events out to live subscribers. Students subscribe to
// their own orders, the staff dashboard to all orders. Every
// subscription returns a cancel func that must be called on teardown.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextId int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscriber)}
}

// Subscribe registers a listener. When all is true every event is
// delivered regardless of owner; otherwise only events for orders owned
// by userId. The returned cancel func unregisters the listener and
// closes its channel; calling it more than once is safe.
func (h *Hub) Subscribe(userId string, all bool) (<-chan OrderEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextId
	h.nextId++

	sub := &subscriber{
		ch:     make(chan OrderEvent, 16),
		userId: userId,
		all:    all,
	}
	h.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish delivers the event to every matching subscriber. A subscriber
// whose buffer is full misses the event rather than blocking the
// publishing request.
func (h *Hub) Publish(event OrderEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.all && sub.userId != event.Order.User_id {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
