package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the token is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// TokenConfig holds session token configuration.
type TokenConfig struct {
	SecretKey     string
	TokenDuration time.Duration
	Issuer        string
}

// DefaultTokenConfig returns a default token configuration.
// In production, the secret key should be loaded from environment variables.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		SecretKey:     "your-secret-key-change-in-production",
		TokenDuration: 12 * time.Hour,
		Issuer:        "work-tracker",
	}
}

// SessionClaims represents the custom claims for session tokens. The
// display name is the only identity the tracker keeps: it travels with
// every request instead of living in shared mutable state.
type SessionClaims struct {
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// TokenManager handles session token operations.
type TokenManager struct {
	config TokenConfig
}

// NewTokenManager creates a new TokenManager with the given configuration.
func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{
		config: config,
	}
}

// GenerateToken generates a new session token for the given display name.
func (m *TokenManager) GenerateToken(displayName string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   displayName,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

// ValidateToken validates the token and returns the claims if valid.
func (m *TokenManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// TokenDuration returns the token duration in seconds.
func (m *TokenManager) TokenDuration() int64 {
	return int64(m.config.TokenDuration.Seconds())
}
