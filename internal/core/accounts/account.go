package accounts

// Account represents a registered account
// The token is the sole bearer credential: issued once at signup,
// never rotated for the lifetime of the account
type Account struct {
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Token        string `json:"-" db:"token"`
	ID           int64  `json:"id" db:"id"`
}

// SignupRequest represents the input for creating a new account
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the input for logging into an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by both signup and login
type TokenResponse struct {
	Token string `json:"token"`
}
