package auth

import (
	"testing"

	"github.com/chandu-aravapalli/BetterMind/internal/config"
)

func setTestConfig(expiryMinutes int) {
	config.Conf = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "unit-test-secret",
			TokenExpiryMinutes: expiryMinutes,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(30)

	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	userID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("subject = %q, want user-42", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	setTestConfig(-1)

	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	setTestConfig(30)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ValidateToken(tok); err == nil {
			t.Errorf("token %q accepted", tok)
		}
	}
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	setTestConfig(30)
	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	config.Conf.Auth.JWTSecret = "different-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected token signed with old secret to be rejected")
	}
}
