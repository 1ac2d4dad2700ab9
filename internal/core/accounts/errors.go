package accounts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common account operations
var (
	// ErrAccountNotFound is returned when an account lookup finds no matching record
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when signing up with an email that is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for any failed login.
	// Unknown email and wrong password are deliberately indistinguishable
	// so the endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a presented token does not resolve to an account
	ErrInvalidToken = errors.New("invalid or missing token")
)

// InvalidEmailError is returned when an email does not meet format requirements
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Email)
}

// WeakPasswordError is returned when a password fails the minimum length check
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("password does not meet strength requirements: %s", e.Reason)
}

// IsValidationError checks if error is a signup/login input validation error
func IsValidationError(err error) bool {
	var emailErr *InvalidEmailError
	var passErr *WeakPasswordError
	return errors.As(err, &emailErr) || errors.As(err, &passErr)
}
