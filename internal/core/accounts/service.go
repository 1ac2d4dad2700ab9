package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Loose email shape check; real validation belongs to whatever sits in
// front of this service. We only reject obviously malformed addresses.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLength is the minimum accepted password length at signup
const MinPasswordLength = 6

type accountService struct {
	accountRepo AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo AccountRepository) AccountService {
	return &accountService{
		accountRepo: accountRepo,
	}
}

// Signup registers a new account: rejects duplicate emails, hashes the
// password, issues the account's one permanent token and persists it
func (s *accountService) Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
	if err := s.validateSignupRequest(&req); err != nil {
		return nil, err
	}

	// Uniqueness check first - duplicate email is a rejection, not an overwrite
	_, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := IssueToken()
	if err != nil {
		return nil, err
	}

	account := &Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		Token:        token,
	}

	// Repository maps unique constraint violations to ErrEmailTaken,
	// closing the race between the check above and the insert
	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{Token: created.Token}, nil
}

// Login verifies credentials and returns the stored token
func (s *accountService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	account, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{Token: account.Token}, nil
}

// ResolveToken looks up the account owning the presented bearer token
func (s *accountService) ResolveToken(ctx context.Context, token string) (*Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	account, err := s.accountRepo.GetByToken(ctx, token)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return account, nil
}

// VerifyCredentials checks the presented plaintext password against the
// stored bcrypt digest. Both failure causes collapse into
// ErrInvalidCredentials so callers cannot probe which field was wrong.
func (s *accountService) VerifyCredentials(ctx context.Context, email, password string) (*Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (s *accountService) validateSignupRequest(req *SignupRequest) error {
	req.Email = strings.TrimSpace(req.Email)

	if !emailRegex.MatchString(req.Email) {
		return &InvalidEmailError{Email: req.Email}
	}

	if len(req.Password) < MinPasswordLength {
		return &WeakPasswordError{
			Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		}
	}

	return nil
}
