package auth

import (
	"errors"
	"testing"
	"time"
)

func testManager(ttl time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		SecretKey: "test-secret",
		TokenTTL:  ttl,
		Issuer:    "solarbazaar",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	m := testManager(time.Hour)

	token, err := m.Generate(42, "supplier@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.SupplierID != 42 {
		t.Errorf("SupplierID = %d, want 42", claims.SupplierID)
	}
	if claims.Email != "supplier@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want 42", claims.Subject)
	}
	if claims.Issuer != "solarbazaar" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.Generate(1, "old@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = m.Validate(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Validate() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := testManager(time.Hour).Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	other := NewJWTManager(JWTConfig{SecretKey: "another-secret", TokenTTL: time.Hour})
	_, err = other.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	m := testManager(time.Hour)
	for _, tok := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}
