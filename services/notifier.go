package services

import (
	"context"
	"log"
	"time"

	"github.com/Keerthanaa24/SkipQ/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Notifier writes notification documents for order status changes. A
// failed write is logged and swallowed: the order operation that
// triggered it still succeeds.
type Notifier struct {
	collection *mongo.Collection
}

func NewNotifier(collection *mongo.Collection) *Notifier {
	return &Notifier{collection: collection}
}

func (n *Notifier) Notify(ctx context.Context, userId, title, message, ntype string) {
	notification := models.Notification{
		ID:         primitive.NewObjectID(),
		User_id:    userId,
		Title:      title,
		Message:    message,
		Type:       ntype,
		Read:       false,
		Created_at: time.Now(),
	}
	notification.Notification_id = notification.ID.Hex()

	if _, err := n.collection.InsertOne(ctx, notification); err != nil {
		log.Printf("notification write failed for user %s: %v", userId, err)
	}
}
