package account

import (
	"encoding/json"
	"log"
	"net/http"

	"Postbox/internal/core/accounts"
)

// SignupHandler handles account registration requests
type SignupHandler struct {
	service accounts.AccountService
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(service accounts.AccountService) *SignupHandler {
	return &SignupHandler{
		service: service,
	}
}

// HandleSignup handles POST /signup
// Registers a new account and returns its bearer token
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Credentials are small; 64KB is generous
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req accounts.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.Signup(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log encoding errors but don't return error response (headers already sent)
		log.Printf("Failed to encode signup response: %v", err)
	}
}
