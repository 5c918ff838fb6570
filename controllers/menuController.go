package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/Keerthanaa24/SkipQ/config"
	"github.com/Keerthanaa24/SkipQ/models"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var menuCollection *mongo.Collection = database.OpenCollection(database.Client, "menu")
var validate = validator.New()

// Get all menu items, newest first. Students pass ?available=true to
// see only what can be ordered; staff omit it to manage everything.
func GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if r.URL.Query().Get("available") == "true" {
		filter["available"] = true
	}

	opt := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := menuCollection.Find(ctx, filter, opt)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Error occurred while listing the menu items",
		})
		return
	}
	defer cursor.Close(ctx)

	var allItems []models.MenuItem
	if err = cursor.All(ctx, &allItems); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Error decoding menu items",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu items retrieved successfully",
		"data":    allItems,
	})
}

// Get a single menu item
func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	itemId := params["item_id"]

	var item models.MenuItem
	err := menuCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item not found",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item retrieved successfully",
		"data":    item,
	})
}

// Create a menu item (staff only)
func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": validationErr.Error(),
		})
		return
	}

	if item.Available == nil {
		available := true
		item.Available = &available
	}

	item.Created_at = time.Now()
	item.Updated_at = time.Now()
	item.ID = primitive.NewObjectID()
	item.Item_id = item.ID.Hex()

	_, insertErr := menuCollection.InsertOne(ctx, item)
	if insertErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item was not created",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item created successfully",
		"data":    item,
	})
}

// Update a menu item (staff only). Last write wins.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	itemId := params["item_id"]

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	updateObj := bson.D{}

	if item.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: item.Name})
	}
	if item.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: item.Description})
	}
	if item.Price != nil {
		if *item.Price <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Price must be a positive number",
			})
			return
		}
		updateObj = append(updateObj, bson.E{Key: "price", Value: item.Price})
	}
	if item.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: item.Category})
	}
	if item.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: item.Image})
	}
	if item.Preparation_time != nil {
		if *item.Preparation_time <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Preparation time must be a positive number",
			})
			return
		}
		updateObj = append(updateObj, bson.E{Key: "preparation_time", Value: item.Preparation_time})
	}
	if item.Available != nil {
		updateObj = append(updateObj, bson.E{Key: "available", Value: item.Available})
	}

	if len(updateObj) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "No fields to update",
		})
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	filter := bson.M{"item_id": itemId}
	opt := options.Update().SetUpsert(false)

	result, err := menuCollection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateObj}}, opt)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item update failed",
		})
		return
	}

	if result.MatchedCount == 0 {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item not found",
		})
		return
	}

	var updatedItem models.MenuItem
	if err := menuCollection.FindOne(ctx, filter).Decode(&updatedItem); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Error retrieving updated menu item",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item updated successfully",
		"data":    updatedItem,
	})
}

// Toggle availability of a menu item (staff only)
func ToggleMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	itemId := params["item_id"]

	var item models.MenuItem
	err := menuCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item not found",
		})
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Error retrieving menu item",
		})
		return
	}

	available := item.Available == nil || !*item.Available
	update := bson.M{"$set": bson.M{"available": available, "updated_at": time.Now()}}

	if _, err := menuCollection.UpdateOne(ctx, bson.M{"item_id": itemId}, update); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Availability update failed",
		})
		return
	}

	item.Available = &available

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Availability updated successfully",
		"data":    item,
	})
}

// Delete a menu item (staff only)
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	itemId := params["item_id"]

	result, err := menuCollection.DeleteOne(ctx, bson.M{"item_id": itemId})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item deletion failed",
		})
		return
	}

	if result.DeletedCount == 0 {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Menu item not found",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item deleted successfully",
	})
}
