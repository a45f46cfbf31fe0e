package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/task-service/internal/domain"
)

func TestJWTSigner_SignAndVerify(t *testing.T) {
	s := NewJWTSigner("test-secret", "task-service")

	token, err := s.SignAccessToken("u-1", "alice@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := s.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u-1" {
		t.Errorf("UserID = %q, want u-1", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.Exp.Before(time.Now()) {
		t.Errorf("Exp = %v already passed", claims.Exp)
	}
}

func TestJWTSigner_ExpiredToken(t *testing.T) {
	s := NewJWTSigner("test-secret", "task-service")

	token, err := s.SignAccessToken("u-1", "alice@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = s.VerifyAccessToken(token)
	if !domain.Is(err, "token_expired") {
		t.Fatalf("expected token_expired, got %v", err)
	}
}

func TestJWTSigner_WrongSecret(t *testing.T) {
	signer := NewJWTSigner("secret-a", "task-service")
	verifier := NewJWTSigner("secret-b", "task-service")

	token, err := signer.SignAccessToken("u-1", "alice@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = verifier.VerifyAccessToken(token)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTSigner_RejectsNoneAlgorithm(t *testing.T) {
	s := NewJWTSigner("test-secret", "task-service")

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid":  "u-1",
		"role": "admin",
	})
	unsigned, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := s.VerifyAccessToken(unsigned); !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid for alg=none, got %v", err)
	}
}

func TestJWTSigner_GarbageToken(t *testing.T) {
	s := NewJWTSigner("test-secret", "task-service")

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := s.VerifyAccessToken(raw); !domain.Is(err, "token_invalid") {
			t.Errorf("VerifyAccessToken(%q): expected token_invalid, got %v", raw, err)
		}
	}
}

func TestJWTSigner_EmptySecretFailsClosed(t *testing.T) {
	s := NewJWTSigner("", "task-service")

	if _, err := s.SignAccessToken("u-1", "a@b.c", "user", time.Hour); err == nil {
		t.Fatal("expected sign to fail with empty secret")
	}

	other := NewJWTSigner("real-secret", "task-service")
	token, err := other.SignAccessToken("u-1", "a@b.c", "user", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := s.VerifyAccessToken(token); !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid with empty secret, got %v", err)
	}
}
