package routes

import (
	"Postbox/internal/api/handlers/account"
	"Postbox/internal/core/accounts"

	"github.com/go-chi/chi/v5"
)

// RegisterAccountRoutes registers the unauthenticated account endpoints
func RegisterAccountRoutes(r chi.Router, service accounts.AccountService) {
	signupHandler := account.NewSignupHandler(service)
	loginHandler := account.NewLoginHandler(service)

	// POST /signup - register a new account, returns its bearer token
	r.Post("/signup", signupHandler.HandleSignup)

	// POST /login - verify credentials, returns the stored bearer token
	r.Post("/login", loginHandler.HandleLogin)
}
