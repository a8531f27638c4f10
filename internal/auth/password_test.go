package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals the plaintext")
	}

	if !h.Verify("correct horse battery staple", hash) {
		t.Error("Verify() rejected the right password")
	}
	if h.Verify("wrong password", hash) {
		t.Error("Verify() accepted the wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}
