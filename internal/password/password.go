// Package password wraps bcrypt behind a small hasher so the work factor
// can be injected (tests run at the minimum cost, production at 10+).
package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the production work factor. Raise it as hardware gets
// faster; existing hashes keep their embedded cost and stay verifiable.
const DefaultCost = 10

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// New returns a Hasher with the given bcrypt cost.
func New(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash derives a salted bcrypt hash from plaintext. The salt is random per
// call, so hashing the same password twice yields different strings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", errors.New("password is empty")
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. A malformed or truncated
// hash counts as a mismatch rather than an error, so callers have a single
// "does not authenticate" outcome.
func (h *Hasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
