package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if !svc.Validate(token) {
		t.Fatalf("freshly issued token should validate")
	}

	subject, err := svc.Subject(token)
	if err != nil {
		t.Fatalf("Subject returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Nanosecond)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if svc.Validate(token) {
		t.Fatalf("expired token should not validate")
	}
}

func TestTokenService_Validate_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one character of the signature segment.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if svc.Validate(tampered) {
		t.Fatalf("tampered token should not validate")
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if verifier.Validate(token) {
		t.Fatalf("token signed with a different secret should not validate")
	}
}

func TestTokenService_Validate_MalformedInput(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c", strings.Repeat("x", 4096)} {
		if svc.Validate(token) {
			t.Fatalf("malformed token %q should not validate", token)
		}
	}
}

func TestTokenService_Validate_RejectsForeignAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if svc.Validate(foreign) {
		t.Fatalf("token with a non-HS256 method should not validate")
	}
}
