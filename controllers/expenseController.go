package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/Keerthanaa24/SkipQ/config"
	middleware "github.com/Keerthanaa24/SkipQ/middlewares"
	"github.com/Keerthanaa24/SkipQ/models"
	"github.com/Keerthanaa24/SkipQ/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var expenseCollection *mongo.Collection = database.OpenCollection(database.Client, "expenses")

// CreateExpense logs a canteen operating expense (staff only).
func CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(expense); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	if _, err := time.Parse("2006-01-02", *expense.Date); err != nil {
		http.Error(w, `{"success": false, "message": "Date must be in YYYY-MM-DD form"}`, http.StatusBadRequest)
		return
	}

	expense.User_id = uid
	expense.Created_at = time.Now()
	expense.ID = primitive.NewObjectID()
	expense.Expense_id = expense.ID.Hex()

	if _, err := expenseCollection.InsertOne(ctx, expense); err != nil {
		http.Error(w, `{"success": false, "message": "Expense creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Expense logged successfully",
		"data":    expense,
	})
}

// GetExpenses lists expenses, optionally restricted to ?month=YYYY-MM.
func GetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if month := r.URL.Query().Get("month"); month != "" {
		filter["date"] = bson.M{"$regex": "^" + month}
	}

	opt := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := expenseCollection.Find(ctx, filter, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving expenses"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding expenses"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Expenses retrieved successfully",
		"data":    expenses,
	})
}

// GetExpenseSummary aggregates one month: total, per-category totals
// and the per-day average across the month's days.
func GetExpenseSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Month must be in YYYY-MM form"}`, http.StatusBadRequest)
		return
	}

	cursor, err := expenseCollection.Find(ctx, bson.M{"date": bson.M{"$regex": "^" + month}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving expenses"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding expenses"}`, http.StatusInternalServerError)
		return
	}

	summary := services.SummarizeExpenses(month, monthStart, expenses)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Expense summary retrieved successfully",
		"data":    summary,
	})
}
