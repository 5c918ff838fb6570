package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/Keerthanaa24/SkipQ/config"
	middleware "github.com/Keerthanaa24/SkipQ/middlewares"
	"github.com/Keerthanaa24/SkipQ/services"
)

var walletService = services.NewWalletService(services.NewMongoWalletStore(
	database.OpenCollection(database.Client, "wallets"),
	database.OpenCollection(database.Client, "walletPins"),
	database.OpenCollection(database.Client, "walletTransactions"),
))
var payments = services.NewPaymentService()

// GetWallet returns the caller's balance (creating the wallet on first
// access) and whether a PIN is configured.
func GetWallet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	balance, err := walletService.GetOrInitBalance(ctx, uid)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving wallet"}`, http.StatusInternalServerError)
		return
	}

	hasPin, err := walletService.HasPin(ctx, uid)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking wallet PIN"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Wallet retrieved successfully",
		"data": map[string]interface{}{
			"balance": balance,
			"has_pin": hasPin,
		},
	})
}

// GetWalletTransactions returns the caller's ledger newest-first.
func GetWalletTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	txns, err := walletService.Transactions(ctx, uid)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving transactions"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Transactions retrieved successfully",
		"data":    txns,
	})
}

// InitiateTopup creates a gateway order for the requested amount and
// hands its id back for the checkout widget.
func InitiateTopup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, `{"success": false, "message": "Amount must be greater than zero"}`, http.StatusBadRequest)
		return
	}

	gatewayOrderId, err := payments.CreateOrder(req.Amount)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to initiate payment"}`, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Top-up initiated",
		"data":    map[string]string{"gateway_order_id": gatewayOrderId},
	})
}

// ConfirmTopup verifies the checkout callback and credits the wallet
// with the amount recorded on the gateway order. A cancelled or failed
// checkout never reaches a credit.
func ConfirmTopup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var req struct {
		GatewayOrderID string `json:"gateway_order_id"`
		PaymentID      string `json:"payment_id"`
		Signature      string `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	amount, err := payments.VerifyPayment(req.GatewayOrderID, req.PaymentID, req.Signature)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Payment verification failed"}`, http.StatusBadRequest)
		return
	}

	balance, err := walletService.AddMoney(ctx, uid, amount, req.PaymentID)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Wallet credit failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Money added to wallet",
		"data":    map[string]interface{}{"balance": balance, "amount": amount},
	})
}

// DeductFromWallet debits the caller's wallet (staff adjustments and
// counter-side corrections). Checkout uses the order endpoint instead.
func DeductFromWallet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var req struct {
		Amount int64  `json:"amount"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	balance, err := walletService.DeductMoney(ctx, uid, req.Amount, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) {
			http.Error(w, `{"success": false, "message": "Insufficient balance"}`, http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrInvalidAmount) {
			http.Error(w, `{"success": false, "message": "Amount must be greater than zero"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"success": false, "message": "Wallet deduction failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Amount deducted from wallet",
		"data":    map[string]interface{}{"balance": balance},
	})
}

// CreateWalletPin sets the caller's 4-digit wallet PIN. Fails if a PIN
// already exists; changing a PIN goes through UpdateWalletPin.
func CreateWalletPin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var req struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := walletService.CreatePin(ctx, uid, req.Pin); err != nil {
		if errors.Is(err, services.ErrInvalidPin) {
			http.Error(w, `{"success": false, "message": "PIN must be a 4-digit number"}`, http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrPinExists) {
			http.Error(w, `{"success": false, "message": "Wallet PIN already exists"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"success": false, "message": "Failed to create wallet PIN"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Wallet PIN created successfully",
	})
}

// UpdateWalletPin replaces the PIN after verifying the old one.
func UpdateWalletPin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var req struct {
		OldPin string `json:"old_pin"`
		NewPin string `json:"new_pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := walletService.UpdatePin(ctx, uid, req.OldPin, req.NewPin); err != nil {
		if errors.Is(err, services.ErrInvalidPin) {
			http.Error(w, `{"success": false, "message": "PIN must be a 4-digit number"}`, http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrPinNotFound) {
			http.Error(w, `{"success": false, "message": "No wallet PIN found"}`, http.StatusNotFound)
			return
		}
		if errors.Is(err, services.ErrIncorrectPin) {
			http.Error(w, `{"success": false, "message": "Incorrect old PIN"}`, http.StatusUnauthorized)
			return
		}
		http.Error(w, `{"success": false, "message": "Failed to update wallet PIN"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Wallet PIN updated successfully",
	})
}

// VerifyWalletPin reports whether the supplied PIN matches. Returns
// false, not an error, when no PIN has been set.
func VerifyWalletPin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var req struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	valid, err := walletService.VerifyPin(ctx, uid, req.Pin)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error verifying wallet PIN"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "PIN verification completed",
		"data":    map[string]bool{"valid": valid},
	})
}
