package routes

import (
	"net/http"

	"github.com/Keerthanaa24/SkipQ/insights"

	"github.com/gorilla/mux"
)

// InsightsRoutes are public, matching the standalone heuristics service
// the frontend already talks to without credentials.
func InsightsRoutes(router *mux.Router) {
	router.HandleFunc("/", insights.Home).Methods(http.MethodGet)
	router.HandleFunc("/predict-rush", insights.PredictRush).Methods(http.MethodPost)
	router.HandleFunc("/insights", insights.GetInsights).Methods(http.MethodGet)
	router.HandleFunc("/staff-ai-advice", insights.StaffAiAdvice).Methods(http.MethodPost)
	router.HandleFunc("/staff-wastage-insights", insights.StaffWastageInsights).Methods(http.MethodPost)
}
