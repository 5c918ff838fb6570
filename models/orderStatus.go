package models

import (
	"fmt"
	"math/rand"
)

// Order statuses. Transitions are strictly monotonic along this chain;
// collected is terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCollected = "collected"
)

var nextStatus = map[string]string{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCollected,
}

// NextStatus returns the single legal successor of the given status.
// ok is false for collected and for unknown statuses.
func NextStatus(current string) (string, bool) {
	next, ok := nextStatus[current]
	return next, ok
}

// CanAdvance reports whether target is the legal successor of current.
func CanAdvance(current, target string) bool {
	next, ok := nextStatus[current]
	return ok && next == target
}

// IsValidStatus reports whether s is one of the five order statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCollected:
		return true
	}
	return false
}

type statusNotification struct {
	title string
	ntype string
}

var statusNotifications = map[string]statusNotification{
	StatusConfirmed: {title: "Order Confirmed", ntype: NotificationOrderConfirmed},
	StatusPreparing: {title: "Order Preparing", ntype: NotificationOrderPreparing},
	StatusReady:     {title: "Order Ready", ntype: NotificationOrderReady},
	StatusCollected: {title: "Order Collected", ntype: NotificationOrderConfirmed},
}

// NotificationForStatus builds the notification title, message and type
// for an order reaching the given status. ok is false for statuses that
// emit nothing (pending).
func NotificationForStatus(status, orderId string) (title, message, ntype string, ok bool) {
	n, ok := statusNotifications[status]
	if !ok {
		return "", "", "", false
	}
	switch status {
	case StatusConfirmed:
		message = fmt.Sprintf("Your order #%s has been successfully placed.", orderId)
	case StatusPreparing:
		message = fmt.Sprintf("Your order #%s is being prepared.", orderId)
	case StatusReady:
		message = fmt.Sprintf("Your order #%s is ready for pickup.", orderId)
	case StatusCollected:
		message = fmt.Sprintf("You have collected your order #%s.", orderId)
	}
	return n.title, message, n.ntype, true
}

// Counters are the fixed pickup stations; one is assigned per order at
// random.
var Counters = []string{"Counter A", "Counter B", "Counter C"}

// GenerateTokenNumber picks a pickup token uniformly in [100,999].
// Tokens are not guaranteed unique across concurrently active orders;
// the counter label disambiguates at the pickup window.
func GenerateTokenNumber() int {
	return 100 + rand.Intn(900)
}

// PickCounter assigns a pickup counter uniformly at random.
func PickCounter() string {
	return Counters[rand.Intn(len(Counters))]
}

// OrderTotal sums price x quantity over the line items.
func OrderTotal(items []OrderLineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
