package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token cannot be verified
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the caller's account name inside a signed token
type Claims struct {
	Account string `json:"account"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the bearer tokens that identify callers
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given HMAC secret and
// token lifetime
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token identifying the given account
func (tm *TokenManager) Issue(account string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Account: account,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token for %s: %w", account, err)
	}
	return signed, nil
}

// Check verifies a token and returns the account it identifies
func (tm *TokenManager) Check(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("auth: %w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Account == "" {
		return "", fmt.Errorf("auth: %w: missing account claim", ErrInvalidToken)
	}
	return claims.Account, nil
}
