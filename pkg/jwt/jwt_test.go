package jwt

import (
	"testing"
	"time"

	"ombaro-backend/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "9876543210", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tokenID == "" {
		t.Fatal("token id must not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: got %s", claims.UserID)
	}
	if claims.Role != "customer" {
		t.Fatalf("role mismatch: got %s", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("token type mismatch: got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Fatal("token id mismatch")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateAccessToken(uuid.New(), "9876543210", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateRefreshToken(uuid.New(), "9876543210", "vendor")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("token type mismatch: got %s", claims.TokenType)
	}
}
