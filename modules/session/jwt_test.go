package session

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	config := TokenConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: 12 * time.Hour,
		Issuer:        "test-issuer",
	}
	manager := NewTokenManager(config)

	displayName := "Alice"

	token, err := manager.GenerateToken(displayName)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.DisplayName != displayName {
		t.Errorf("claims.DisplayName = %v, want %v", claims.DisplayName, displayName)
	}
	if claims.Issuer != config.Issuer {
		t.Errorf("claims.Issuer = %v, want %v", claims.Issuer, config.Issuer)
	}
	if claims.Subject != displayName {
		t.Errorf("claims.Subject = %v, want %v", claims.Subject, displayName)
	}
}

func TestTokenManager_InvalidToken(t *testing.T) {
	manager := NewTokenManager(DefaultTokenConfig())

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "random string",
			token: "not.a.valid.token",
		},
		{
			name:  "malformed jwt",
			token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.ValidateToken(tt.token)
			if err == nil {
				t.Error("ValidateToken() should return error for invalid token")
			}
		})
	}
}

func TestTokenManager_WrongSecretKey(t *testing.T) {
	manager1 := NewTokenManager(TokenConfig{
		SecretKey:     "secret-key-1",
		TokenDuration: 12 * time.Hour,
		Issuer:        "test-issuer",
	})
	manager2 := NewTokenManager(TokenConfig{
		SecretKey:     "secret-key-2",
		TokenDuration: 12 * time.Hour,
		Issuer:        "test-issuer",
	})

	token, err := manager1.GenerateToken("Alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = manager2.ValidateToken(token)
	if err == nil {
		t.Error("ValidateToken() should fail with different secret key")
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	config := TokenConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: 1 * time.Millisecond, // Very short duration
		Issuer:        "test-issuer",
	}
	manager := NewTokenManager(config)

	token, err := manager.GenerateToken("Alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	_, err = manager.ValidateToken(token)
	if err == nil {
		t.Error("ValidateToken() should fail for expired token")
	}
	if err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenManager_TokenDuration(t *testing.T) {
	manager := NewTokenManager(TokenConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: 30 * time.Minute,
		Issuer:        "test-issuer",
	})

	expected := int64(30 * 60)
	if got := manager.TokenDuration(); got != expected {
		t.Errorf("TokenDuration() = %v, want %v", got, expected)
	}
}
