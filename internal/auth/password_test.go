package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	SetBcryptCost(bcrypt.MinCost)

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !CheckPasswordHash("secret1", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("secret2", hash) {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestCheckPasswordHashMalformedDigest(t *testing.T) {
	if CheckPasswordHash("secret1", "not-a-bcrypt-digest") {
		t.Fatal("expected malformed digest to fail verification")
	}
	if CheckPasswordHash("secret1", "") {
		t.Fatal("expected empty digest to fail verification")
	}
}

func TestSetBcryptCostIgnoresOutOfRange(t *testing.T) {
	SetBcryptCost(bcrypt.MinCost)
	SetBcryptCost(-1)
	SetBcryptCost(bcrypt.MaxCost + 1)

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost, cost)
	}
}
