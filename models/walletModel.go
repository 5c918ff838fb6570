package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransactionAdd    = "add"
	TransactionDeduct = "deduct"
)

// Wallet holds one user's balance in paise. Created lazily with balance
// 0 on first access; the balance must never go negative.
type Wallet struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	User_id    string             `bson:"user_id" json:"user_id"`
	Balance    int64              `bson:"balance" json:"balance"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}

// WalletTransaction is an append-only ledger entry; one is written for
// every successful balance mutation.
type WalletTransaction struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Transaction_id string             `bson:"transaction_id" json:"transaction_id"`
	User_id        string             `bson:"user_id" json:"user_id"`
	Type           string             `bson:"type" json:"type" validate:"required,eq=add|eq=deduct"`
	Amount         int64              `bson:"amount" json:"amount" validate:"required,gt=0"`
	Reason         string             `bson:"reason" json:"reason"`
	Payment_id     string             `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
}

// WalletPin stores the bcrypt digest of a user's 4-digit wallet PIN.
// At most one PIN document exists per user.
type WalletPin struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	User_id    string             `bson:"user_id" json:"user_id"`
	Pin_hash   string             `bson:"pin_hash" json:"-"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}
