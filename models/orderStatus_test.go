package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current string
		next    string
		ok      bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusCollected, true},
		{StatusCollected, "", false},
		{"bogus", "", false},
	}

	for _, tt := range tests {
		next, ok := NextStatus(tt.current)
		assert.Equal(t, tt.ok, ok, "current=%s", tt.current)
		assert.Equal(t, tt.next, next, "current=%s", tt.current)
	}
}

func TestCanAdvance(t *testing.T) {
	assert.True(t, CanAdvance(StatusConfirmed, StatusPreparing))
	assert.True(t, CanAdvance(StatusPreparing, StatusReady))
	assert.True(t, CanAdvance(StatusReady, StatusCollected))

	// Skipping a state or going backwards is never legal.
	assert.False(t, CanAdvance(StatusConfirmed, StatusReady))
	assert.False(t, CanAdvance(StatusReady, StatusConfirmed))
	assert.False(t, CanAdvance(StatusConfirmed, StatusConfirmed))

	// Collected is terminal.
	assert.False(t, CanAdvance(StatusCollected, StatusPending))
	assert.False(t, CanAdvance(StatusCollected, StatusCollected))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCollected} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus(""))
}

func TestNotificationForStatus(t *testing.T) {
	title, message, ntype, ok := NotificationForStatus(StatusConfirmed, "abc123")
	require.True(t, ok)
	assert.Equal(t, "Order Confirmed", title)
	assert.Equal(t, "Your order #abc123 has been successfully placed.", message)
	assert.Equal(t, NotificationOrderConfirmed, ntype)

	title, _, ntype, ok = NotificationForStatus(StatusPreparing, "abc123")
	require.True(t, ok)
	assert.Equal(t, "Order Preparing", title)
	assert.Equal(t, NotificationOrderPreparing, ntype)

	title, _, ntype, ok = NotificationForStatus(StatusReady, "abc123")
	require.True(t, ok)
	assert.Equal(t, "Order Ready", title)
	assert.Equal(t, NotificationOrderReady, ntype)

	title, _, ntype, ok = NotificationForStatus(StatusCollected, "abc123")
	require.True(t, ok)
	assert.Equal(t, "Order Collected", title)
	assert.Equal(t, NotificationOrderConfirmed, ntype)

	_, _, _, ok = NotificationForStatus(StatusPending, "abc123")
	assert.False(t, ok)
}

func TestGenerateTokenNumber(t *testing.T) {
	for i := 0; i < 1000; i++ {
		token := GenerateTokenNumber()
		require.GreaterOrEqual(t, token, 100)
		require.LessOrEqual(t, token, 999)
	}
}

func TestPickCounter(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		counter := PickCounter()
		assert.Contains(t, Counters, counter)
		seen[counter] = true
	}
	// With 200 draws all three counters should show up.
	assert.Len(t, seen, len(Counters))
}

func TestOrderTotal(t *testing.T) {
	items := []OrderLineItem{
		{Item_id: "1", Name: "Masala Dosa", Price: 6000, Quantity: 2},
		{Item_id: "2", Name: "Filter Coffee", Price: 2500, Quantity: 1},
		{Item_id: "3", Name: "Idli", Price: 4000, Quantity: 3},
	}
	assert.Equal(t, int64(2*6000+2500+3*4000), OrderTotal(items))
	assert.Equal(t, int64(0), OrderTotal(nil))
}
