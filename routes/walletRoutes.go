package routes

import (
	"net/http"

	controller "github.com/Keerthanaa24/SkipQ/controllers"

	"github.com/gorilla/mux"
)

func WalletProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/wallet", controller.GetWallet).Methods(http.MethodGet)
	router.HandleFunc("/wallet/transactions", controller.GetWalletTransactions).Methods(http.MethodGet)
	router.HandleFunc("/wallet/topup/initiate", controller.InitiateTopup).Methods(http.MethodPost)
	router.HandleFunc("/wallet/topup/confirm", controller.ConfirmTopup).Methods(http.MethodPost)
	router.HandleFunc("/wallet/deduct", controller.DeductFromWallet).Methods(http.MethodPost)

	router.HandleFunc("/wallet/pin", controller.CreateWalletPin).Methods(http.MethodPost)
	router.HandleFunc("/wallet/pin", controller.UpdateWalletPin).Methods(http.MethodPatch)
	router.HandleFunc("/wallet/pin/verify", controller.VerifyWalletPin).Methods(http.MethodPost)
}
