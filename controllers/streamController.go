package controller

import (
	"log"
	"net/http"

	middleware "github.com/Keerthanaa24/SkipQ/middlewares"
	"github.com/Keerthanaa24/SkipQ/models"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the SPA origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamOrders upgrades to a websocket and pushes order events until
// the client disconnects. Students receive events for their own orders;
// staff receive all orders. Closing the connection cancels the
// subscription.
func StreamOrders(w http.ResponseWriter, r *http.Request) {
	_, _, role, uid := middleware.GetUserFromContext(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ch, cancel := orderHub.Subscribe(uid, role == models.RoleStaff)
	defer cancel()

	// Drain client frames so closes and pings are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
