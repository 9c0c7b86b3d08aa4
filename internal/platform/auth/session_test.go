package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSessions_IssueAndVerify(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := sessions.Issue(accountID, "sara@example.com", "user", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "sara@example.com" || claims.Role != "user" || !claims.Active {
		t.Errorf("unexpected claims: %+v", claims)
	}

	got, err := claims.AccountID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != accountID {
		t.Errorf("expected account id %s, got %s", accountID, got)
	}
}

func TestSessions_WrongSecret(t *testing.T) {
	issuer := NewSessions("secret-one", time.Hour)
	verifier := NewSessions("secret-two", time.Hour)

	token, err := issuer.Issue(uuid.New(), "sara@example.com", "user", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestSessions_Expired(t *testing.T) {
	sessions := NewSessions("test-secret", -time.Minute)
	token, err := sessions.Issue(uuid.New(), "sara@example.com", "user", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := sessions.Verify(token); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}

func TestSessions_Garbage(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	if _, err := sessions.Verify("not-a-token"); err == nil {
		t.Error("expected verification to fail for garbage input")
	}
}
