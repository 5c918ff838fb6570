package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a single dish on the canteen menu. Price is stored in the
// smallest currency unit (paise).
type MenuItem struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Item_id          string             `bson:"item_id" json:"item_id"`
	Name             *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description      *string            `bson:"description" json:"description"`
	Price            *int64             `bson:"price" json:"price" validate:"required,gt=0"`
	Category         *string            `bson:"category" json:"category" validate:"required,min=2,max=50"`
	Image            *string            `bson:"image" json:"image"`
	Preparation_time *int               `bson:"preparation_time" json:"preparation_time" validate:"required,gt=0"`
	Available        *bool              `bson:"available" json:"available"`
	Created_at       time.Time          `bson:"created_at" json:"created_at"`
	Updated_at       time.Time          `bson:"updated_at" json:"updated_at"`
}
