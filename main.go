package main

import (
	"log"
	"net/http"
	"os"

	middleware "github.com/Keerthanaa24/SkipQ/middlewares"
	routes "github.com/Keerthanaa24/SkipQ/routes"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.PublicRoutes(router)
	routes.InsightsRoutes(router)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.UserProtectedRoutes(securedRoutes)
	routes.MenuProtectedRoutes(securedRoutes)
	routes.OrderProtectedRoutes(securedRoutes)
	routes.WalletProtectedRoutes(securedRoutes)
	routes.NotificationProtectedRoutes(securedRoutes)

	// Staff-only routes
	staffRoutes := router.PathPrefix("/").Subrouter()
	staffRoutes.Use(middleware.Authentication)
	staffRoutes.Use(middleware.StaffOnly)
	routes.MenuStaffRoutes(staffRoutes)
	routes.OrderStaffRoutes(staffRoutes)
	routes.ExpenseStaffRoutes(staffRoutes)

	log.Printf("Server running on port %s", port)
	http.ListenAndServe(":"+port, router)
}
