package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationOrderConfirmed = "order_confirmed"
	NotificationOrderPreparing = "order_preparing"
	NotificationOrderReady     = "order_ready"
)

type Notification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Notification_id string             `bson:"notification_id" json:"notification_id"`
	User_id         string             `bson:"user_id" json:"user_id"`
	Title           string             `bson:"title" json:"title"`
	Message         string             `bson:"message" json:"message"`
	Type            string             `bson:"type" json:"type"`
	Read            bool               `bson:"read" json:"read"`
	Created_at      time.Time          `bson:"created_at" json:"created_at"`
}
