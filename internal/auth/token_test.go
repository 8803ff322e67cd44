package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	token, err := m.Issue(42, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected subject 42, got %d", got)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewTokenManager(testSecret, time.Hour)
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("other-secret"), time.Hour)
	token, err := issuer.Issue(1, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	m := NewTokenManager(testSecret, time.Hour)
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	token, err := m.Issue(5, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := m.Verify(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := m.Verify(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyRejectsNonIntegerSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewTokenManager(testSecret, time.Hour)
	if _, err := m.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssueRequiresSecret(t *testing.T) {
	m := NewTokenManager(nil, time.Hour)
	if _, err := m.Issue(1, 0); err == nil {
		t.Fatal("expected issue without secret to fail")
	}
}
