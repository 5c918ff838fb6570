package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/Keerthanaa24/SkipQ/helper"
	"github.com/Keerthanaa24/SkipQ/models"
)

// Context keys to store user information
type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
	RoleKey  contextKey = "role"
	UidKey   contextKey = "uid"
)

// Authentication middleware for Gorilla Mux
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
			return
		}

		// Token format should be "Bearer <token>"
		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		tokenString := tokenParts[1]
		claims, err := helper.ValidateToken(tokenString)
		if err != "" {
			http.Error(w, err, http.StatusUnauthorized)
			return
		}

		// Store user details in the request context
		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		ctx = context.WithValue(ctx, NameKey, claims.Name)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, UidKey, claims.Uid)

		// Pass modified request with context to the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffOnly rejects requests whose token does not carry the staff role.
// It must run after Authentication.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)
		if role != models.RoleStaff {
			http.Error(w, "Staff access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves user data from the request context
func GetUserFromContext(r *http.Request) (email, name, role, uid string) {
	email, _ = r.Context().Value(EmailKey).(string)
	name, _ = r.Context().Value(NameKey).(string)
	role, _ = r.Context().Value(RoleKey).(string)
	uid, _ = r.Context().Value(UidKey).(string)
	return
}
