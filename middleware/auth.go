package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"daily-planner/auth"
)

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// RequireAuth extracts the bearer token, verifies it and stores the user ID
// in the request context. A missing or malformed header is 401; a token
// that fails verification (bad signature, expired, garbage) is 403.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			respondError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		userID, err := auth.ParseToken(tokenStr)
		if err != nil {
			respondError(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		r = r.WithContext(context.WithValue(r.Context(), "userID", userID))
		next.ServeHTTP(w, r)
	})
}
