package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "s3cret-password" {
		t.Error("Hash must not equal the plain password")
	}

	if !ComparePassword(hash, "s3cret-password") {
		t.Error("Expected correct password to match")
	}

	if ComparePassword(hash, "wrong-password") {
		t.Error("Expected wrong password to fail")
	}
}
