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

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var notificationCollection *mongo.Collection = database.OpenCollection(database.Client, "notification")
var notifier = services.NewNotifier(notificationCollection)

// GetNotifications returns the caller's notifications newest-first.
func GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	opt := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := notificationCollection.Find(ctx, bson.M{"user_id": uid}, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving notifications"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding notifications"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

// MarkNotificationRead flips one notification's read flag.
func MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)
	notificationId := mux.Vars(r)["notification_id"]

	filter := bson.M{"notification_id": notificationId, "user_id": uid}
	update := bson.M{"$set": bson.M{"read": true}}

	result, err := notificationCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to mark notification read"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Notification not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Notification marked read",
	})
}

// MarkAllNotificationsRead flips every unread notification for the
// caller in a single update, so a partial batch cannot be left behind.
func MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	filter := bson.M{"user_id": uid, "read": false}
	update := bson.M{"$set": bson.M{"read": true}}

	result, err := notificationCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to mark notifications read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "All notifications marked read",
		"data":    map[string]int64{"updated": result.ModifiedCount},
	})
}
