package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed structure, expiry, or a non-integer subject.
var ErrInvalidToken = errors.New("invalid token")

const DefaultTokenTTL = 24 * time.Hour

// TokenManager issues and verifies HS256 bearer tokens whose subject
// is the user's integer ID.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the given user. A non-positive ttl
// falls back to the manager's configured lifetime.
func (m *TokenManager) Issue(userID int, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}
	if ttl <= 0 {
		ttl = m.ttl
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry of a token and returns the
// user ID it was issued for.
func (m *TokenManager) Verify(tokenStr string) (int, error) {
	if len(m.secret) == 0 {
		return 0, errors.New("JWT secret is not configured")
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
