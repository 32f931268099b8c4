package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"daily-planner/auth"
	"daily-planner/store"
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	json.NewDecoder(r.Body).Decode(&req)
	req.Email = normalizeEmail(req.Email)

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	existing, err := store.FindUserByEmail(req.Email)
	if err != nil {
		log.Println("Register error:", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Println("Register error:", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := store.CreateUser(req.Email, hash)
	if errors.Is(err, store.ErrDuplicateEmail) {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		log.Println("Register error:", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if _, err := store.GetOrCreatePlanner(user.ID); err != nil {
		log.Println("Register error:", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := auth.IssueToken(user.ID)
	if err != nil {
		log.Println("Register error:", err)
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token, "email": user.Email})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	json.NewDecoder(r.Body).Decode(&req)
	req.Email = normalizeEmail(req.Email)

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := store.FindUserByEmail(req.Email)
	if err != nil {
		log.Println("Login error:", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	// Unknown email and wrong password are indistinguishable to the client.
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.IssueToken(user.ID)
	if err != nil {
		log.Println("Login error:", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token, "email": user.Email})
}

// Verify confirms the session is still usable and returns the account email.
func Verify(w http.ResponseWriter, r *http.Request) {
	user, err := store.FindUserByID(getUserID(r))
	if err != nil || user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": user.Email})
}
