package routes

import (
	"net/http"

	controller "github.com/Keerthanaa24/SkipQ/controllers"

	"github.com/gorilla/mux"
)

func MenuProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/{item_id}", controller.GetMenuItem).Methods(http.MethodGet)
}

func MenuStaffRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.CreateMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/{item_id}", controller.UpdateMenuItem).Methods(http.MethodPatch)
	router.HandleFunc("/menu/{item_id}/availability", controller.ToggleMenuItemAvailability).Methods(http.MethodPatch)
	router.HandleFunc("/menu/{item_id}", controller.DeleteMenuItem).Methods(http.MethodDelete)
}
