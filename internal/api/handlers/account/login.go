package account

import (
	"encoding/json"
	"log"
	"net/http"

	"Postbox/internal/core/accounts"
)

// LoginHandler handles login requests
type LoginHandler struct {
	service accounts.AccountService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service accounts.AccountService) *LoginHandler {
	return &LoginHandler{
		service: service,
	}
}

// HandleLogin handles POST /login
// Verifies credentials and returns the account's stored bearer token
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req accounts.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode login response: %v", err)
	}
}
