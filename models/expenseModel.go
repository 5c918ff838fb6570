package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a canteen operating expense logged by staff. Date uses the
// YYYY-MM-DD form so month queries are simple prefix matches.
type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Expense_id  string             `bson:"expense_id" json:"expense_id"`
	User_id     string             `bson:"user_id" json:"user_id"`
	Date        *string            `bson:"date" json:"date" validate:"required,len=10"`
	Amount      *int64             `bson:"amount" json:"amount" validate:"required,gt=0"`
	Category    *string            `bson:"category" json:"category" validate:"required,min=2,max=50"`
	Description *string            `bson:"description" json:"description"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
}

// MonthlyExpenseSummary aggregates one month of expenses.
type MonthlyExpenseSummary struct {
	Month        string           `json:"month"`
	Total        int64            `json:"total"`
	Categories   map[string]int64 `json:"categories"`
	DailyAverage int64            `json:"daily_average"`
}
