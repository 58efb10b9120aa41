package crypto

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "S3cure!password"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == password {
		t.Error("Expected hash to differ from the password")
	}

	if !VerifyPassword(hash, password) {
		t.Error("Expected password to verify against its hash")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Error("Expected invalid hash to fail verification")
	}
}
