package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	User_id       string             `bson:"user_id" json:"user_id"`
	Name          *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email         *string            `bson:"email" json:"email" validate:"required,email"`
	Password      *string            `bson:"password" json:"password" validate:"required,min=6"`
	Role          *string            `bson:"role" json:"role" validate:"required,eq=student|eq=staff"`
	Roll_number   *string            `bson:"roll_number" json:"roll_number"`
	College_name  *string            `bson:"college_name" json:"college_name"`
	Token         *string            `bson:"token" json:"token"`
	Refresh_Token *string            `bson:"refresh_token" json:"refresh_token"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}
