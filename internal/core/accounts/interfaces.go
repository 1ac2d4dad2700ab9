package accounts

import "context"

// AccountRepository defines the interface for account data persistence
type AccountRepository interface {
	Create(ctx context.Context, account *Account) (*Account, error)

	// GetByEmail retrieves an account by its email address.
	// Returns ErrAccountNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// GetByToken retrieves the account whose stored token equals the argument.
	// Tokens carry a unique index, so this is an indexed equality lookup.
	// Returns ErrAccountNotFound when no account matches.
	GetByToken(ctx context.Context, token string) (*Account, error)
}

// AccountService defines the interface for account business logic
type AccountService interface {
	// Signup registers a new account and returns its freshly issued token.
	// Returns ErrEmailTaken if the email is already registered.
	Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error)

	// Login verifies credentials and returns the account's stored token,
	// the same token Signup issued. Returns ErrInvalidCredentials on any
	// failure, never distinguishing unknown email from wrong password.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// ResolveToken maps a bearer token to its account.
	// Returns ErrInvalidToken when the token is empty or was never issued.
	ResolveToken(ctx context.Context, token string) (*Account, error)

	// VerifyCredentials checks a plaintext password against the stored
	// digest for the account registered under email.
	VerifyCredentials(ctx context.Context, email, password string) (*Account, error)
}
