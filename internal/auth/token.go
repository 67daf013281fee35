// Package auth issues and validates the bearer tokens API clients present.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager signs and checks HS256 client tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// clientClaims carries the client name next to the standard claims.
type clientClaims struct {
	jwt.RegisteredClaims
	Client string `json:"client"`
}

// IssuedToken is a signed token and when it stops being accepted.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// Issue creates a signed token for the named client. The subject is the
// client name; a random token id lets individual tokens be told apart in logs.
func (m *TokenManager) Issue(client string) (IssuedToken, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return IssuedToken{}, errors.New("client name is empty")
	}

	now := m.now()
	exp := now.Add(m.ttl)
	claims := clientClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   client,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Client: client,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}

	return IssuedToken{Token: signed, ExpiresAt: exp}, nil
}

// ValidateToken parses and validates a client token and returns the client name.
func (m *TokenManager) ValidateToken(_ context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &clientClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*clientClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return "", fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.Subject == "" || claims.Subject != claims.Client {
		return "", fmt.Errorf("invalid subject")
	}

	return claims.Subject, nil
}
