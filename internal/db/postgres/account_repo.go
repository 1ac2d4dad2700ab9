package postgres

import (
	"Postbox/internal/core/accounts"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type postgresAccountRepo struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) accounts.AccountRepository {
	return &postgresAccountRepo{db: db}
}

// Create inserts a new account into the accounts table
func (r *postgresAccountRepo) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	query := `
		INSERT INTO accounts (email, password_hash, token)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, token`

	err := r.db.QueryRowContext(ctx, query, account.Email, account.PasswordHash, account.Token).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Token)
	if err != nil {
		// Check for unique constraint violations
		if strings.Contains(err.Error(), "duplicate key") {
			if strings.Contains(err.Error(), "accounts_email_key") {
				return nil, accounts.ErrEmailTaken
			}
			if strings.Contains(err.Error(), "accounts_token_key") {
				// 128 bits of entropy makes this effectively unreachable
				return nil, fmt.Errorf("token collision on insert: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// GetByEmail retrieves an account by its email address
func (r *postgresAccountRepo) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `SELECT id, email, password_hash, token FROM accounts WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Token)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

// GetByToken retrieves the account owning a bearer token.
// The token column carries a unique index, so this is a single index lookup.
func (r *postgresAccountRepo) GetByToken(ctx context.Context, token string) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `SELECT id, email, password_hash, token FROM accounts WHERE token = $1`

	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Token)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by token: %w", err)
	}

	return account, nil
}
