package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/Keerthanaa24/SkipQ/config"
	"github.com/Keerthanaa24/SkipQ/helper"
	middleware "github.com/Keerthanaa24/SkipQ/middlewares"
	"github.com/Keerthanaa24/SkipQ/models"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "users")

func SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		http.Error(w, "Error checking email", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "Email already exists", http.StatusConflict)
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	token, refreshToken, _ := helper.GenerateAllTokens(*user.Email, *user.Name, *user.Role, user.User_id)
	user.Token = &token
	user.Refresh_Token = &refreshToken

	_, insertErr := userCollection.InsertOne(ctx, user)
	if insertErr != nil {
		http.Error(w, "User creation failed", http.StatusInternalServerError)
		return
	}

	user.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	var foundUser models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&foundUser)
	if err != nil {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
	if !passwordIsValid {
		http.Error(w, msg, http.StatusUnauthorized)
		return
	}

	token, refreshToken, _ := helper.GenerateAllTokens(*foundUser.Email, *foundUser.Name, *foundUser.Role, foundUser.User_id)
	helper.UpdateAllTokens(token, refreshToken, foundUser.User_id)

	// Create a response struct excluding the password
	responseUser := struct {
		Email        string  `json:"email"`
		Name         string  `json:"name"`
		Role         string  `json:"role"`
		RollNumber   *string `json:"roll_number"`
		CollegeName  *string `json:"college_name"`
		UserID       string  `json:"user_id"`
		Token        string  `json:"token"`
		RefreshToken string  `json:"refresh_token"`
	}{
		Email:        *foundUser.Email,
		Name:         *foundUser.Name,
		Role:         *foundUser.Role,
		RollNumber:   foundUser.Roll_number,
		CollegeName:  foundUser.College_name,
		UserID:       foundUser.User_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseUser)
}

// GetMe returns the profile of the authenticated caller.
func GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": uid}).Decode(&user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	user.Password = nil
	user.Token = nil
	user.Refresh_Token = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	userId := params["user_id"]

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	responseUser := struct {
		Name        string    `json:"name"`
		Email       string    `json:"email"`
		Role        string    `json:"role"`
		RollNumber  *string   `json:"roll_number"`
		CollegeName *string   `json:"college_name"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
		UserID      string    `json:"user_id"`
	}{
		Name:        *user.Name,
		Email:       *user.Email,
		Role:        *user.Role,
		RollNumber:  user.Roll_number,
		CollegeName: user.College_name,
		CreatedAt:   user.Created_at,
		UpdatedAt:   user.Updated_at,
		UserID:      user.User_id,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseUser)
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}
