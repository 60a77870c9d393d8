package helpers

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q does not look like bcrypt", hash)
	}
	if !CompareHashAndPassword(hash, "password123") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "password124") {
		t.Error("wrong password accepted")
	}
}

func TestCompareHashAndPasswordGarbageHash(t *testing.T) {
	if CompareHashAndPassword("not-a-hash", "password123") {
		t.Error("garbage hash accepted")
	}
}
