package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	database "github.com/Keerthanaa24/SkipQ/config"
	"github.com/Keerthanaa24/SkipQ/events"
	middleware "github.com/Keerthanaa24/SkipQ/middlewares"
	"github.com/Keerthanaa24/SkipQ/models"
	"github.com/Keerthanaa24/SkipQ/services"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")
var orderHub = events.NewHub()

type createOrderRequest struct {
	Items          []models.OrderLineItem `json:"items"`
	TotalAmount    int64                  `json:"total_amount"`
	PaymentMethod  string                 `json:"payment_method"`
	Pin            string                 `json:"pin,omitempty"`
	GatewayOrderID string                 `json:"gateway_order_id,omitempty"`
	PaymentID      string                 `json:"payment_id,omitempty"`
	Signature      string                 `json:"signature,omitempty"`
}

// CreateOrder places an order at checkout. Wallet payments verify the
// PIN and deduct atomically before the order is written; gateway
// payments are verified server-side against the gateway order. The
// order is written with status confirmed and a pickup token.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if len(req.Items) == 0 {
		http.Error(w, `{"success": false, "message": "Order must contain at least one item"}`, http.StatusBadRequest)
		return
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.Price <= 0 {
			http.Error(w, `{"success": false, "message": "Item price and quantity must be positive"}`, http.StatusBadRequest)
			return
		}
	}

	if req.TotalAmount != models.OrderTotal(req.Items) {
		http.Error(w, `{"success": false, "message": "Total amount does not match order items"}`, http.StatusBadRequest)
		return
	}

	paidFromWallet := false
	switch req.PaymentMethod {
	case "wallet":
		hasPin, err := walletService.HasPin(ctx, uid)
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error checking wallet PIN"}`, http.StatusInternalServerError)
			return
		}
		if !hasPin {
			http.Error(w, `{"success": false, "message": "Set a wallet PIN before paying from the wallet"}`, http.StatusBadRequest)
			return
		}

		ok, err := walletService.VerifyPin(ctx, uid, req.Pin)
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error verifying wallet PIN"}`, http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, `{"success": false, "message": "Incorrect PIN"}`, http.StatusUnauthorized)
			return
		}

		names := make([]string, 0, len(req.Items))
		for _, item := range req.Items {
			names = append(names, item.Name)
		}
		reason := fmt.Sprintf("Food Order - %s", strings.Join(names, ", "))

		if _, err := walletService.DeductMoney(ctx, uid, req.TotalAmount, reason); err != nil {
			if errors.Is(err, services.ErrInsufficientBalance) {
				http.Error(w, `{"success": false, "message": "Insufficient balance"}`, http.StatusBadRequest)
				return
			}
			http.Error(w, `{"success": false, "message": "Wallet deduction failed"}`, http.StatusInternalServerError)
			return
		}
		paidFromWallet = true

	case "upi", "card":
		amount, err := payments.VerifyPayment(req.GatewayOrderID, req.PaymentID, req.Signature)
		if err != nil {
			http.Error(w, `{"success": false, "message": "Payment verification failed"}`, http.StatusBadRequest)
			return
		}
		if amount != req.TotalAmount {
			http.Error(w, `{"success": false, "message": "Paid amount does not match order total"}`, http.StatusBadRequest)
			return
		}

	default:
		http.Error(w, `{"success": false, "message": "Invalid payment method"}`, http.StatusBadRequest)
		return
	}

	order := models.Order{
		ID:             primitive.NewObjectID(),
		User_id:        uid,
		Items:          req.Items,
		Total_amount:   req.TotalAmount,
		Status:         models.StatusConfirmed,
		Token_number:   models.GenerateTokenNumber(),
		Counter_name:   models.PickCounter(),
		Payment_method: req.PaymentMethod,
		Payment_status: "completed",
		Created_at:     time.Now(),
		Updated_at:     time.Now(),
	}
	order.Order_id = order.ID.Hex()

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		// Money already left the wallet; put it back.
		if paidFromWallet {
			if refundErr := walletService.Refund(ctx, uid, req.TotalAmount, "Refund - order creation failed"); refundErr != nil {
				http.Error(w, `{"success": false, "message": "Order creation failed; contact the canteen to recover the deducted amount"}`, http.StatusInternalServerError)
				return
			}
		}
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	if title, message, ntype, ok := models.NotificationForStatus(order.Status, order.Order_id); ok {
		notifier.Notify(ctx, uid, title, message, ntype)
	}

	orderHub.Publish(events.OrderEvent{Action: events.ActionOrderCreated, Order: order})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order created successfully",
		"data":    order,
	})
}

// InitiateOrderPayment creates a gateway order for the cart total so
// the checkout widget can collect a upi/card payment.
func InitiateOrderPayment(w http.ResponseWriter, r *http.Request) {
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
		"message": "Payment initiated",
		"data":    map[string]string{"gateway_order_id": gatewayOrderId},
	})
}

// UpdateOrderStatus advances an order along the lifecycle. Only the
// single legal successor is accepted; advancing a collected order is a
// no-op. Every successful advance notifies the order's owner.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !models.IsValidStatus(requestBody.Status) {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if order.Status == models.StatusCollected {
		// Terminal state; nothing to advance.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Order already collected",
			"data":    order,
		})
		return
	}

	if !models.CanAdvance(order.Status, requestBody.Status) {
		http.Error(w, `{"success": false, "message": "Invalid status transition"}`, http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"status":     requestBody.Status,
			"updated_at": time.Now(),
		},
	}
	if _, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}

	if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated order"}`, http.StatusInternalServerError)
		return
	}

	if title, message, ntype, ok := models.NotificationForStatus(order.Status, order.Order_id); ok {
		notifier.Notify(ctx, order.User_id, title, message, ntype)
	}

	orderHub.Publish(events.OrderEvent{Action: events.ActionStatusUpdated, Order: order})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}

// GetOrders lists all orders newest-first with pagination (staff view).
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allOrders []models.Order
	if err = cursor.All(ctx, &allOrders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order data"}`, http.StatusInternalServerError)
		return
	}

	totalOrders, err := orderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total order count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    allOrders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     totalOrders,
			"total_pages":      (totalOrders + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetMyOrders lists the caller's orders newest-first. ?active=true
// keeps only orders that have not been collected; the first element is
// then the most recent active order.
func GetMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	filter := bson.M{"user_id": uid}
	if r.URL.Query().Get("active") == "true" {
		filter["status"] = bson.M{"$ne": models.StatusCollected}
	}

	opt := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := orderCollection.Find(ctx, filter, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding orders data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// GetOrderById returns one order; students may only read their own.
func GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if orderId == "" {
		http.Error(w, `{"success": false, "message": "Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	_, _, role, uid := middleware.GetUserFromContext(r)

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if role != models.RoleStaff && order.User_id != uid {
		http.Error(w, `{"success": false, "message": "Access denied"}`, http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}
