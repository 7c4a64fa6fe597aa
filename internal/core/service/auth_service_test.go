package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

func TestSignup_SetsDefaultsAndHashesPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", 0, 0, testLogger)

	user, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if user.PasswordHash == "hunter2!hunter2" || user.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if user.ReminderTime != domain.DefaultReminderTime {
		t.Errorf("reminder time = %q, want %q", user.ReminderTime, domain.DefaultReminderTime)
	}
	if !user.EmailRemindersEnabled {
		t.Error("reminders should default to enabled")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", 0, 0, testLogger)

	if _, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(context.Background(), "Other Alice", "alice@example.com", "different-pass")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin_IssuesVerifiablePair(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", 0, 0, testLogger)

	user, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	pair, err := svc.Login(context.Background(), "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token pair")
	}

	got, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if got != user.ID {
		t.Errorf("verified subject = %v, want %v", got, user.ID)
	}

	// The refresh token must not pass as an access token.
	if _, err := svc.VerifyAccess(pair.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("refresh-as-access err = %v, want ErrInvalidToken", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", 0, 0, testLogger)

	if _, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	// An unknown email returns the same error as a bad password.
	if _, err := svc.Login(context.Background(), "nobody@example.com", "hunter2!hunter2"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh_RotatesPair(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", 0, 0, testLogger)

	user, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	pair, err := svc.Login(context.Background(), "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got, err := svc.VerifyAccess(fresh.AccessToken)
	if err != nil {
		t.Fatalf("verify refreshed access: %v", err)
	}
	if got != user.ID {
		t.Errorf("refreshed subject = %v, want %v", got, user.ID)
	}

	// Access tokens are not valid refresh material.
	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("access-as-refresh err = %v, want ErrInvalidToken", err)
	}
}

func TestRefresh_DeletedUser(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", 0, 0, testLogger)

	user, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	pair, err := svc.Login(context.Background(), "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := users.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("refresh for deleted user err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyAccess_ExpiredToken(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, "secret", time.Nanosecond, 0, testLogger)

	if _, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	pair, err := svc.Login(context.Background(), "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := svc.VerifyAccess(pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expired token err = %v, want ErrInvalidToken", err)
	}
}
