// Package auth issues and verifies the signed access tokens presented on
// every authenticated call.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the username the account is looked up by,
// plus the standard iat/exp claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenManager signs and verifies HS256 tokens with a process-wide secret.
// It holds no mutable state and is safe for concurrent use.
type TokenManager struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenManager(secret []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secret: secret, validity: validity, now: time.Now}
}

// Issue returns a signed token for username, valid for the configured window.
func (m *TokenManager) Issue(username string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		Username: username,
	})

	return token.SignedString(m.secret)
}

// Verify checks signature, algorithm and expiry. Every failure, whatever its
// cause, is reported as common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, errors.New("username claim missing"))
	}

	return claims, nil
}
