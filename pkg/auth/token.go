// Package auth issues and validates the session tokens that bind a browser
// to its lab session on the server.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrEmptySession  = errors.New("sessionID cannot be empty")
	ErrEmptyLab      = errors.New("labID cannot be empty")
	ErrShortSecret   = errors.New("secret must be at least 32 characters")
)

// Claims identifies a lab session.
type Claims struct {
	SessionID string
	LabID     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// TokenManager signs and verifies session tokens.
type TokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewTokenManager creates a token manager. The secret must be at least 32
// characters.
func NewTokenManager(secret string, tokenDuration time.Duration) (*TokenManager, error) {
	if len(secret) < 32 {
		return nil, ErrShortSecret
	}
	return &TokenManager{
		secretKey:     []byte(secret),
		tokenDuration: tokenDuration,
	}, nil
}

// GenerateToken issues a signed token for a session.
func (m *TokenManager) GenerateToken(sessionID, labID string) (string, error) {
	if sessionID == "" {
		return "", ErrEmptySession
	}
	if labID == "" {
		return "", ErrEmptyLab
	}

	now := time.Now()
	expiresAt := now.Add(m.tokenDuration)

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"lab_id":     labID,
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies a token and returns its claims.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claimsMap, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	sessionID, ok := claimsMap["session_id"].(string)
	if !ok || sessionID == "" {
		return nil, fmt.Errorf("%w: missing or invalid session_id", ErrInvalidClaims)
	}
	labID, ok := claimsMap["lab_id"].(string)
	if !ok || labID == "" {
		return nil, fmt.Errorf("%w: missing or invalid lab_id", ErrInvalidClaims)
	}

	claims := &Claims{SessionID: sessionID, LabID: labID}
	if exp, ok := claimsMap["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if iat, ok := claimsMap["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	return claims, nil
}
