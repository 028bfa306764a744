package util

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, 42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id: got %d, want 42", claims.UserID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", 1, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("token signed with another secret should be rejected")
	}
}

func TestTokenExpired(t *testing.T) {
	// TTL in the past is normalized to the default, so build an expired
	// token by generating with a tiny TTL and waiting it out
	token, err := GenerateToken("secret", 1, time.Millisecond)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); err == nil {
		t.Error("garbage token should be rejected")
	}
}
