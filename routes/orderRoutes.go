package routes

import (
	"net/http"

	controller "github.com/Keerthanaa24/SkipQ/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/orders", controller.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/payment/initiate", controller.InitiateOrderPayment).Methods(http.MethodPost)
	router.HandleFunc("/orders/my", controller.GetMyOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", controller.GetOrderById).Methods(http.MethodGet)

	router.HandleFunc("/ws/orders", controller.StreamOrders).Methods(http.MethodGet)
}

func OrderStaffRoutes(router *mux.Router) {
	router.HandleFunc("/orders", controller.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", controller.UpdateOrderStatus).Methods(http.MethodPatch)
}
