package accounts

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the raw entropy per token: 16 bytes = 128 bits,
// hex-encoded into a 32 character opaque string
const tokenBytes = 16

// IssueToken generates a new opaque bearer token.
// The token encodes nothing about the account; uniqueness is enforced
// by the store's unique index on top of the entropy here.
func IssueToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
