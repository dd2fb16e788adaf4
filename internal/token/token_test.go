package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"edudash/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testUser() *models.User {
	return &models.User{ID: "user-1", Role: models.RoleTeacher}
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", 7*24*time.Hour)

	signed, expiresAt, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 6*24*time.Hour {
		t.Fatalf("unexpected expiry: %v", expiresAt)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != models.RoleTeacher {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	svc := NewService("test-secret", time.Hour)
	svc.now = fixedClock(issuedAt)
	signed, _, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	svc.now = fixedClock(issuedAt.Add(2 * time.Hour))
	if _, err := svc.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	signed, _, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	signed, _, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	verifier := NewService("secret-b", time.Hour)
	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
