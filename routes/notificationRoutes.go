package routes

import (
	"net/http"

	controller "github.com/Keerthanaa24/SkipQ/controllers"

	"github.com/gorilla/mux"
)

func NotificationProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/notifications", controller.GetNotifications).Methods(http.MethodGet)
	router.HandleFunc("/notifications/read-all", controller.MarkAllNotificationsRead).Methods(http.MethodPost)
	router.HandleFunc("/notifications/{notification_id}/read", controller.MarkNotificationRead).Methods(http.MethodPatch)
}
