// Package token issues and verifies the bearer tokens handed out on login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed encoding, wrong algorithm, expired. Callers must not trust any
// claim from a token that produced this error.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried inside an issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Manager signs and parses HS256 tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. The secret comes from configuration at
// startup; an empty secret is rejected because it would let anyone forge
// identities.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given user with iat and exp set.
func (m *Manager) Issue(userID, username string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:   userID,
		Username: username,
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the claims.
func (m *Manager) Parse(raw string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Pin HMAC so a token re-signed under another algorithm is rejected.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
