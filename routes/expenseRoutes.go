package routes

import (
	"net/http"

	controller "github.com/Keerthanaa24/SkipQ/controllers"

	"github.com/gorilla/mux"
)

func ExpenseStaffRoutes(router *mux.Router) {
	router.HandleFunc("/expenses", controller.CreateExpense).Methods(http.MethodPost)
	router.HandleFunc("/expenses", controller.GetExpenses).Methods(http.MethodGet)
	router.HandleFunc("/expenses/summary", controller.GetExpenseSummary).Methods(http.MethodGet)
}
