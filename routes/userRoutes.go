package routes

import (
	controller "github.com/Keerthanaa24/SkipQ/controllers"

	"github.com/gorilla/mux"
)

func PublicRoutes(router *mux.Router) {
	router.HandleFunc("/users/signup", controller.SignUp).Methods("POST")
	router.HandleFunc("/users/login", controller.Login).Methods("POST")
}

func UserProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users/me", controller.GetMe).Methods("GET")
	router.HandleFunc("/users/{user_id}", controller.GetUser).Methods("GET")
}
