package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueVerify(t *testing.T) {
	a, err := NewAuthenticator("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthenticator: %v", err)
	}
	token, err := a.Issue("u1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	actor, err := a.VerifyHeader("Bearer " + token)
	if err != nil {
		t.Fatalf("VerifyHeader: %v", err)
	}
	if actor.ID != "u1" {
		t.Fatalf("actor = %q; want u1", actor.ID)
	}
	if sub, err := Subject(token); err != nil || sub != "u1" {
		t.Fatalf("Subject = %q, %v; want u1", sub, err)
	}
}

func TestVerifyRejects(t *testing.T) {
	a, _ := NewAuthenticator("secret", time.Minute)
	other, _ := NewAuthenticator("other", time.Minute)
	foreign, _ := other.Issue("u1")

	expired, _ := NewAuthenticator("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, _ := expired.Issue("u1")

	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"empty", "", ErrMissingToken},
		{"no scheme", foreign, ErrInvalidToken},
		{"basic scheme", "Basic dTE6cGFzcw==", ErrInvalidToken},
		{"wrong secret", "Bearer " + foreign, ErrInvalidToken},
		{"expired", "Bearer " + stale, ErrInvalidToken},
		{"garbage", "Bearer not.a.jwt", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.VerifyHeader(tt.header); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestIssueRequiresActor(t *testing.T) {
	a, _ := NewAuthenticator("secret", 0)
	if _, err := a.Issue("  "); err == nil {
		t.Fatal("Issue accepted blank actor")
	}
	if _, err := NewAuthenticator("", 0); err == nil {
		t.Fatal("NewAuthenticator accepted empty secret")
	}
}
