package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	j, err := New("super-secret")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	tok, err := j.SignToken(42, "user@example.com", "admin", "Some Admin", time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	claims, err := j.ParseClaims(tok)
	if err != nil {
		t.Fatalf("ParseClaims error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userId mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Fatalf("role mismatch: got %q", claims.Role)
	}
	if claims.Name != "Some Admin" {
		t.Fatalf("name mismatch: got %q", claims.Name)
	}
}

func TestParseClaims_Expired(t *testing.T) {
	t.Parallel()

	j, err := New("secret")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// 有效期为负，签出即过期
	tok, err := j.SignToken(1, "u1@example.com", "user", "U1", -1*time.Second)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	if _, err = j.ParseClaims(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseClaims_WrongKey(t *testing.T) {
	t.Parallel()

	right, err := New("right-secret")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	wrong, err := New("wrong-secret")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	tok, err := right.SignToken(2, "u2@example.com", "user", "U2", time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	if _, err = wrong.ParseClaims(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseClaims_Malformed(t *testing.T) {
	t.Parallel()

	j, err := New("k")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if _, err = j.ParseClaims("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
	if _, err = j.ParseClaims(""); err == nil {
		t.Fatalf("expected error for empty token, got nil")
	}
}

func TestNew_EmptyKey(t *testing.T) {
	t.Parallel()

	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty key, got nil")
	}
}
