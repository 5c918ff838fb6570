package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLineItem is a snapshot copy of a MenuItem at order time, not a
// live reference. Later menu edits never change a placed order.
type OrderLineItem struct {
	Item_id          string `bson:"item_id" json:"item_id" validate:"required"`
	Name             string `bson:"name" json:"name" validate:"required"`
	Price            int64  `bson:"price" json:"price" validate:"required,gt=0"`
	Quantity         int    `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Image            string `bson:"image" json:"image"`
	Preparation_time int    `bson:"preparation_time" json:"preparation_time"`
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Order_id       string             `bson:"order_id" json:"order_id"`
	User_id        string             `bson:"user_id" json:"user_id"`
	Items          []OrderLineItem    `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total_amount   int64              `bson:"total_amount" json:"total_amount" validate:"required,gt=0"`
	Status         string             `bson:"status" json:"status"`
	Token_number   int                `bson:"token_number" json:"token_number"`
	Counter_name   string             `bson:"counter_name" json:"counter_name"`
	Payment_method string             `bson:"payment_method" json:"payment_method" validate:"required,eq=upi|eq=card|eq=wallet"`
	Payment_status string             `bson:"payment_status" json:"payment_status"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}
