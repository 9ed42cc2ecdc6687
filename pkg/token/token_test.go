package token

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/caresetu/caresetu_backend/config"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.JWTConfig{
		SecretKey:        "test-secret-key-for-unit-tests",
		Issuer:           "caresetu",
		Audience:         "caresetu-api",
		AccessTTLMinutes: 15,
		RefreshTTLDays:   7,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := testManager(t)
	userID := uuid.New()

	signed, err := m.IssueAccess(userID, "patient", "sess-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.VerifyAccess(signed)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "patient" {
		t.Errorf("Role = %q, want %q", claims.Role, "patient")
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "sess-1")
	}
}

func TestVerifyAccessRejectsRefreshToken(t *testing.T) {
	m := testManager(t)

	signed, err := m.IssueRefresh(uuid.New(), "doctor", "sess-2")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	if _, err := m.VerifyAccess(signed); !errors.Is(err, ErrWrongTokenType) {
		t.Errorf("VerifyAccess(refresh) = %v, want ErrWrongTokenType", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := testManager(t)

	signed, err := m.IssueAccess(uuid.New(), "patient", "sess-3")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tampered := signed[:len(signed)-2] + "xx"
	if _, err := m.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := testManager(t)

	other, err := NewManager(config.JWTConfig{
		SecretKey:        "another-secret",
		Issuer:           "caresetu",
		Audience:         "caresetu-api",
		AccessTTLMinutes: 15,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	signed, err := other.IssueAccess(uuid.New(), "patient", "sess-4")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(wrong secret) = %v, want ErrInvalidToken", err)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager(config.JWTConfig{}); err == nil {
		t.Error("NewManager with empty secret should fail")
	}
}
